package pdfdoc

import (
	"fmt"
	"os"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// pdfDocument reads glyph positions with ledongthuc/pdf and the inherited
// page attributes (/Rotate, /MediaBox, /CropBox) with pdfcpu, whose page tree
// walk resolves inheritance from ancestor /Pages nodes.
type pdfDocument struct {
	file   *os.File
	reader *pdf.Reader
	ctx    *pdfmodel.Context
}

var _ Document = (*pdfDocument)(nil)

// Open opens the PDF file at path.
func Open(path string) (Document, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading page tree: %w", err)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	return &pdfDocument{file: f, reader: reader, ctx: ctx}, nil
}

func (d *pdfDocument) NumPages() int {
	return d.reader.NumPage()
}

func (d *pdfDocument) Page(index int) (_ Page, err error) {
	pageNr := index + 1
	if pageNr < 1 || pageNr > d.reader.NumPage() {
		return nil, fmt.Errorf("pdfdoc: page %d out of range [0,%d)", index, d.reader.NumPage())
	}

	_, _, attrs, err := d.ctx.PageDict(pageNr, false)
	if err != nil {
		return nil, fmt.Errorf("page %d attributes: %w", pageNr, err)
	}
	if attrs == nil || attrs.MediaBox == nil {
		return nil, fmt.Errorf("page %d: no MediaBox", pageNr)
	}
	box := attrs.MediaBox
	if attrs.CropBox != nil {
		box = attrs.CropBox
	}

	p := d.reader.Page(pageNr)
	if p.V.IsNull() {
		return nil, fmt.Errorf("page %d: missing page object", pageNr)
	}

	// Malformed content streams make the content interpreter panic.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d content: %v", pageNr, r)
		}
	}()
	glyphs := toGlyphs(p.Content().Text, box)

	return newGlyphPage(NormalizeRotation(attrs.Rotate), box.Width(), box.Height(), glyphs), nil
}

func (d *pdfDocument) Close() error {
	return d.file.Close()
}

// toGlyphs converts text runs from PDF user space (origin bottom-left) to
// top-left page space relative to box.
func toGlyphs(texts []pdf.Text, box *types.Rectangle) []Glyph {
	glyphs := make([]Glyph, 0, len(texts))
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		w := t.W
		if w <= 0 {
			w = 0.5 * t.FontSize * float64(len([]rune(t.S)))
		}
		x0 := t.X - box.LL.X
		bottom := box.UR.Y - t.Y
		glyphs = append(glyphs, Glyph{
			S:    t.S,
			Rect: models.NewRect(x0, bottom-t.FontSize, x0+w, bottom),
		})
	}
	return glyphs
}
