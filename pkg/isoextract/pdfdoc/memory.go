package pdfdoc

import (
	"errors"
	"fmt"
	"sync"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
)

// ErrClosed is returned when a closed document is used.
var ErrClosed = errors.New("pdfdoc: document is closed")

// MemoryPage describes a page of a MemoryDocument.
type MemoryPage struct {
	Rotate int
	W, H   float64
	Glyphs []Glyph
}

// MemoryDocument is a Document held entirely in memory. It backs tests and
// callers that already have positioned text from another source.
type MemoryDocument struct {
	mu     sync.Mutex
	pages  []MemoryPage
	closed bool
}

// NewMemoryDocument creates a document from page descriptions.
func NewMemoryDocument(pages ...MemoryPage) *MemoryDocument {
	return &MemoryDocument{pages: pages}
}

func (d *MemoryDocument) NumPages() int {
	return len(d.pages)
}

func (d *MemoryDocument) Page(index int) (Page, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, ErrClosed
	}
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("pdfdoc: page %d out of range [0,%d)", index, len(d.pages))
	}
	p := d.pages[index]
	return newGlyphPage(NormalizeRotation(p.Rotate), p.W, p.H, p.Glyphs), nil
}

func (d *MemoryDocument) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (d *MemoryDocument) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// TextRun lays text out on one line starting at (x, top) with a fixed
// advance of 0.6*size per character. Each non-space character becomes one
// glyph; spaces only advance the pen.
func TextRun(x, top, size float64, text string) []Glyph {
	advance := 0.6 * size
	glyphs := make([]Glyph, 0, len(text))
	for _, r := range text {
		if r != ' ' {
			glyphs = append(glyphs, Glyph{
				S:    string(r),
				Rect: models.NewRect(x, top, x+advance, top+size),
			})
		}
		x += advance
	}
	return glyphs
}

// TextBlock lays out lines below each other with a line pitch of 1.5*size.
func TextBlock(x, top, size float64, lines ...string) []Glyph {
	var glyphs []Glyph
	for i, l := range lines {
		glyphs = append(glyphs, TextRun(x, top+float64(i)*1.5*size, size, l)...)
	}
	return glyphs
}
