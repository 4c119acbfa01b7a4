package isoextract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/pdfdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDefaultLayout(t *testing.T) {
	doc := pdfdoc.NewMemoryDocument(page(
		keywordGlyphs(),
		pdfdoc.TextBlock(45, 765, 6, row("a"), row("b")),
		pdfdoc.TextRun(970, 812, 4, "ISO-1001-A"),
		pdfdoc.TextRun(1160, 816, 4, "2"),
	))
	opts := DefaultOptions()
	opts.Open = func(path string) (pdfdoc.Document, error) { return doc, nil }

	table, err := Extract("/drawings/line-1001.pdf", opts)
	require.NoError(t, err)

	assert.Equal(t, "line-1001.pdf", table.File)
	assert.Equal(t, "primary", table.Layout)
	assert.Equal(t, "ISO-1001-A", table.ISONo)
	assert.Equal(t, "2", table.RevNo)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "a1", table.Rows[0][0])
	assert.Equal(t, "b19", table.Rows[1][18])
	assert.Equal(t, []string{"ISO-1001-A", "2"}, table.Rows[1][19:])
	assert.True(t, doc.Closed())
}

func TestResolveUsesFallbackAsWhole(t *testing.T) {
	cfg := testLayouts()
	fallback := cfg.Profiles[1]
	primary := cfg.Profiles[0]
	doc := pdfdoc.NewMemoryDocument(page(
		keywordGlyphs(),
		layoutGlyphs(fallback, []string{row("f")}, "ISO-FB", "7"),
		// Primary ISO/revision regions hold text but the primary table is empty.
		pdfdoc.TextRun(primary.ISONo.X0+5, primary.ISONo.Y0+5, 8, "ISO-PRIMARY"),
		pdfdoc.TextRun(primary.RevNo.X0+5, primary.RevNo.Y0+5, 8, "1"),
	))

	table, err := Resolve(doc, testOptions())
	require.NoError(t, err)
	assert.Equal(t, "fallback", table.Layout)
	assert.Equal(t, "ISO-FB", table.ISONo)
	assert.Equal(t, "7", table.RevNo)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "f1", table.Rows[0][0])
}

func TestResolveNeverMixesCoordinateSets(t *testing.T) {
	cfg := testLayouts()
	doc := pdfdoc.NewMemoryDocument(page(
		keywordGlyphs(),
		layoutGlyphs(cfg.Profiles[0], []string{row("p"), row("q")}, "ISO-ONE", "1"),
		layoutGlyphs(cfg.Profiles[1], []string{row("f")}, "ISO-TWO", "2"),
	))

	table, err := Resolve(doc, testOptions())
	require.NoError(t, err)
	assert.Equal(t, "primary", table.Layout)
	assert.Equal(t, "ISO-ONE", table.ISONo)
	assert.Equal(t, "1", table.RevNo)
	for _, r := range table.Rows {
		assert.NotContains(t, r, "ISO-TWO")
		assert.NotContains(t, r, "f1")
	}
}

func TestResolveFailures(t *testing.T) {
	cfg := testLayouts()
	primary := cfg.Profiles[0]
	short := row("s")[:len(row("s"))-4] // drops the last column

	tests := []struct {
		name     string
		page     pdfdoc.MemoryPage
		sentinel error
		kind     Kind
	}{
		{
			name:     "missing revision label",
			page:     page(keywordGlyphs("REV. NO"), layoutGlyphs(primary, []string{row("a")}, "ISO", "0")),
			sentinel: ErrMissingAnchor,
			kind:     KindMissingAnchor,
		},
		{
			name:     "missing marker",
			page:     page(keywordGlyphs("KOSHA"), layoutGlyphs(primary, []string{row("a")}, "ISO", "0")),
			sentinel: ErrMissingAnchor,
			kind:     KindMissingAnchor,
		},
		{
			name:     "no table text",
			page:     page(keywordGlyphs()),
			sentinel: ErrNoTableText,
			kind:     KindNoTableText,
		},
		{
			name:     "schema mismatch",
			page:     page(keywordGlyphs(), layoutGlyphs(primary, []string{row("a"), short, row("c")}, "ISO", "0")),
			sentinel: ErrSchemaMismatch,
			kind:     KindSchemaMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Resolve(pdfdoc.NewMemoryDocument(tt.page), testOptions())
			assert.Nil(t, table)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.kind, KindOf(err))
		})
	}
}

func TestResolveFirstAnchorWins(t *testing.T) {
	cfg := testLayouts()
	// A cover page mentions NPS before the drawing page does.
	cover := page(pdfdoc.TextRun(20, 400, 8, "NPS"))
	drawing := page(keywordGlyphs(), layoutGlyphs(cfg.Profiles[0], []string{row("d")}, "ISO-D", "3"))
	doc := pdfdoc.NewMemoryDocument(cover, drawing)

	_, err := Resolve(doc, testOptions())
	assert.ErrorIs(t, err, ErrNoTableText)

	doc = pdfdoc.NewMemoryDocument(drawing, cover)
	table, err := Resolve(doc, testOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"NPS"}, table.AmbiguousAnchors)
	assert.Equal(t, "d1", table.Rows[0][0])
}

func TestExtractOpenErrors(t *testing.T) {
	tests := []struct {
		name string
		open pdfdoc.Opener
	}{
		{"error", func(string) (pdfdoc.Document, error) { return nil, errors.New("not a PDF") }},
		{"panic", func(string) (pdfdoc.Document, error) { panic("malformed xref") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			opts.Open = tt.open

			_, err := Extract("broken.pdf", opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOpen)
			assert.Equal(t, KindOpen, KindOf(err))

			var ee *ExtractionError
			require.ErrorAs(t, err, &ee)
			assert.Equal(t, "broken.pdf", ee.File)
		})
	}
}

func TestExtractInvalidFileWithDefaultOpener(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.pdf")
	require.NoError(t, os.WriteFile(garbage, []byte("not a pdf at all"), 0644))

	for _, path := range []string{garbage, filepath.Join(dir, "missing.pdf")} {
		_, err := Extract(path, DefaultOptions())
		require.Error(t, err, "Extract(%q)", filepath.Base(path))
		assert.ErrorIs(t, err, ErrOpen)
		assert.Equal(t, KindOpen, KindOf(err), "Extract(%q)", filepath.Base(path))
	}
}

func TestExtractClosesDocumentOnFailure(t *testing.T) {
	doc := pdfdoc.NewMemoryDocument(page(keywordGlyphs("NPS")))
	opts := testOptions()
	opts.Open = func(string) (pdfdoc.Document, error) { return doc, nil }

	_, err := Extract("a.pdf", opts)
	assert.ErrorIs(t, err, ErrMissingAnchor)
	assert.True(t, doc.Closed())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err      error
		expected Kind
	}{
		{NewExtractionError("x.pdf", KindTimeout, errors.New("slow")), KindTimeout},
		{fmt.Errorf("wrapped: %w", ErrNoTableText), KindNoTableText},
		{fmt.Errorf("layout a: %w", ErrEmptyTable), KindEmptyTable},
		{ErrTimeout, KindTimeout},
		{errors.New("other"), KindUnknown},
	}

	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.expected {
			t.Errorf("KindOf(%v) = %q, expected %q", tt.err, got, tt.expected)
		}
	}
}

func TestReason(t *testing.T) {
	err := NewExtractionError("a.pdf", KindMissingAnchor, fmt.Errorf("%w: %q", ErrMissingAnchor, "REV. NO"))
	assert.Equal(t, `required keyword not found: "REV. NO"`, Reason(err))
	assert.Equal(t, `a.pdf: missing-anchor: required keyword not found: "REV. NO"`, err.Error())
	assert.Equal(t, "plain", Reason(errors.New("plain")))
}
