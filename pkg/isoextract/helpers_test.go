package isoextract

import (
	"fmt"
	"strings"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/layouts"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/pdfdoc"
)

// testLayouts uses round regions that are easy to place text into.
func testLayouts() *layouts.Config {
	cfg := layouts.Default()
	cfg.Profiles = []models.CoordinateSet{
		{
			Name:  "primary",
			Table: models.NewRect(0, 0, 500, 100),
			ISONo: models.NewRect(600, 0, 800, 20),
			RevNo: models.NewRect(600, 30, 800, 50),
		},
		{
			Name:  "fallback",
			Table: models.NewRect(0, 200, 500, 300),
			ISONo: models.NewRect(600, 200, 800, 220),
			RevNo: models.NewRect(600, 230, 800, 250),
		},
	}
	return &cfg
}

func testOptions() Options {
	return Options{Layouts: testLayouts(), Workers: 1}
}

// row returns a table line with one token per schema column.
func row(prefix string) string {
	tokens := make([]string, len(models.DefaultSchema))
	for i := range tokens {
		tokens[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return strings.Join(tokens, " ")
}

// keywordGlyphs places every default keyword well outside the test regions.
func keywordGlyphs(skip ...string) []pdfdoc.Glyph {
	var glyphs []pdfdoc.Glyph
	top := 400.0
outer:
	for _, k := range layouts.Default().Keywords.Required() {
		for _, s := range skip {
			if s == k {
				continue outer
			}
		}
		glyphs = append(glyphs, pdfdoc.TextRun(20, top, 8, k)...)
		top += 20
	}
	return glyphs
}

// layoutGlyphs fills the regions of set with table rows, ISO and revision text.
func layoutGlyphs(set models.CoordinateSet, rows []string, iso, rev string) []pdfdoc.Glyph {
	glyphs := pdfdoc.TextBlock(set.Table.X0+5, set.Table.Y0+5, 5, rows...)
	glyphs = append(glyphs, pdfdoc.TextRun(set.ISONo.X0+5, set.ISONo.Y0+5, 8, iso)...)
	return append(glyphs, pdfdoc.TextRun(set.RevNo.X0+5, set.RevNo.Y0+5, 8, rev)...)
}

func page(glyphs ...[]pdfdoc.Glyph) pdfdoc.MemoryPage {
	var all []pdfdoc.Glyph
	for _, g := range glyphs {
		all = append(all, g...)
	}
	return pdfdoc.MemoryPage{W: 1191, H: 842, Glyphs: all}
}
