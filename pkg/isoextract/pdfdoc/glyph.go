package pdfdoc

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
)

// Glyph is a positioned run of text, usually a single character.
type Glyph struct {
	S    string
	Rect models.Rect
}

// line is a row of glyphs assembled into text. owner maps every byte of text
// to the glyph it came from, or -1 for an inserted word space.
type line struct {
	text   string
	owner  []int
	glyphs []Glyph
}

// Minimum baseline distance, relative to glyph height, that starts a new line.
const lineTolerance = 0.4

// Minimum horizontal gap, relative to glyph height, rendered as a space.
const spaceGap = 0.2

// buildLines groups glyphs into lines, top to bottom, left to right.
func buildLines(glyphs []Glyph) []line {
	if len(glyphs) == 0 {
		return nil
	}

	sorted := make([]Glyph, len(glyphs))
	copy(sorted, glyphs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rect.Y1 != sorted[j].Rect.Y1 {
			return sorted[i].Rect.Y1 < sorted[j].Rect.Y1
		}
		return sorted[i].Rect.X0 < sorted[j].Rect.X0
	})

	var rows [][]Glyph
	var baseline float64
	for _, g := range sorted {
		tol := lineTolerance * g.Rect.Height()
		if tol < 1 {
			tol = 1
		}
		if len(rows) > 0 && g.Rect.Y1-baseline <= tol {
			rows[len(rows)-1] = append(rows[len(rows)-1], g)
			continue
		}
		rows = append(rows, []Glyph{g})
		baseline = g.Rect.Y1
	}

	lines := make([]line, 0, len(rows))
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool {
			return row[i].Rect.X0 < row[j].Rect.X0
		})
		lines = append(lines, assembleLine(row))
	}
	return lines
}

func assembleLine(row []Glyph) line {
	var b strings.Builder
	var owner []int
	for i, g := range row {
		if i > 0 {
			prev := row[i-1]
			h := g.Rect.Height()
			if ph := prev.Rect.Height(); ph < h {
				h = ph
			}
			if g.Rect.X0-prev.Rect.X1 > spaceGap*h && !endsWithSpace(prev.S) && !startsWithSpace(g.S) {
				b.WriteByte(' ')
				owner = append(owner, -1)
			}
		}
		b.WriteString(g.S)
		for range len(g.S) {
			owner = append(owner, i)
		}
	}
	return line{text: b.String(), owner: owner, glyphs: row}
}

func endsWithSpace(s string) bool {
	return s == "" || unicode.IsSpace(rune(s[len(s)-1]))
}

func startsWithSpace(s string) bool {
	return s == "" || unicode.IsSpace(rune(s[0]))
}

// matchRect returns the union of the glyph boxes covering text[start:end].
func (l line) matchRect(start, end int) (models.Rect, bool) {
	var r models.Rect
	found := false
	for _, idx := range l.owner[start:end] {
		if idx < 0 {
			continue
		}
		gr := l.glyphs[idx].Rect
		if !found {
			r, found = gr, true
			continue
		}
		r = r.Union(gr)
	}
	return r, found
}

// glyphPage implements Page over a flat list of glyphs.
type glyphPage struct {
	rotation int
	width    float64
	height   float64
	glyphs   []Glyph

	once  sync.Once
	lines []line
}

func newGlyphPage(rotation int, width, height float64, glyphs []Glyph) *glyphPage {
	return &glyphPage{rotation: rotation, width: width, height: height, glyphs: glyphs}
}

func (p *glyphPage) Rotation() int   { return p.rotation }
func (p *glyphPage) Width() float64  { return p.width }
func (p *glyphPage) Height() float64 { return p.height }

func (p *glyphPage) allLines() []line {
	p.once.Do(func() {
		p.lines = buildLines(p.glyphs)
	})
	return p.lines
}

// Search finds non-overlapping occurrences of text within single lines.
func (p *glyphPage) Search(text string) []models.Rect {
	if text == "" {
		return nil
	}
	var hits []models.Rect
	for _, l := range p.allLines() {
		offset := 0
		for {
			i := strings.Index(l.text[offset:], text)
			if i < 0 {
				break
			}
			start := offset + i
			end := start + len(text)
			if r, ok := l.matchRect(start, end); ok {
				hits = append(hits, r)
			}
			offset = end
		}
	}
	return hits
}

// Text keeps the glyphs whose center lies inside clip.
func (p *glyphPage) Text(clip models.Rect) string {
	var inside []Glyph
	for _, g := range p.glyphs {
		if clip.Contains(g.Rect.Center()) {
			inside = append(inside, g)
		}
	}
	lines := buildLines(inside)
	texts := make([]string, 0, len(lines))
	for _, l := range lines {
		texts = append(texts, l.text)
	}
	return strings.Join(texts, "\n")
}
