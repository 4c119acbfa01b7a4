package isoextract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/parser"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/pdfdoc"
)

// Extract opens the document at path, extracts its table and closes it.
// Failures are returned as *ExtractionError.
func Extract(path string, opts Options) (table *models.ExtractedTable, err error) {
	name := filepath.Base(path)

	// The PDF readers panic on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			table = nil
			err = NewExtractionError(name, KindOpen, fmt.Errorf("%w: %v", ErrOpen, r))
		}
	}()

	doc, err := opts.opener()(path)
	if err != nil {
		return nil, NewExtractionError(name, KindOpen, fmt.Errorf("%w: %w", ErrOpen, err))
	}
	doc = pdfdoc.Cached(doc)
	defer doc.Close()

	table, err = Resolve(doc, opts)
	if err != nil {
		return nil, NewExtractionError(name, KindOf(err), err)
	}
	table.File = name
	return table, nil
}

// Resolve locates the required keywords in doc, reads the table region of
// the first layout profile that yields text and parses it.
//
// The first occurrence of each keyword is used. The table is read from the
// page of the first table keyword, the ISO and revision fields from the pages
// of their own labels. All three regions always come from the same profile.
func Resolve(doc pdfdoc.Document, opts Options) (*models.ExtractedTable, error) {
	cfg := opts.LayoutConfig()
	kw := cfg.Keywords

	anchors := make(map[string][]models.Anchor)
	var missing, ambiguous []string
	for _, keyword := range kw.Required() {
		if _, done := anchors[keyword]; done {
			continue
		}
		found, err := parser.FindAnchors(doc, keyword)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOpen, err)
		}
		if len(found) == 0 {
			missing = append(missing, fmt.Sprintf("%q", keyword))
			continue
		}
		anchors[keyword] = found
		if len(parser.AnchorPages(found)) > 1 {
			ambiguous = append(ambiguous, keyword)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingAnchor, strings.Join(missing, ", "))
	}

	tablePage, err := doc.Page(anchors[kw.Table][0].Page)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	isoPage, err := doc.Page(anchors[kw.ISONo][0].Page)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	revPage, err := doc.Page(anchors[kw.RevNo][0].Page)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	tried := make([]string, 0, len(cfg.Profiles))
	for _, set := range cfg.Profiles {
		tableText := parser.ExtractText(tablePage, set.Table)
		if tableText == "" {
			tried = append(tried, set.Name)
			continue
		}

		isoText := parser.ExtractText(isoPage, set.ISONo)
		revText := parser.ExtractText(revPage, set.RevNo)

		table, err := parser.ParseTable(tableText, isoText, revText, cfg.Columns)
		if err != nil {
			return nil, fmt.Errorf("layout %s: %w", set.Name, err)
		}
		table.Layout = set.Name
		table.AmbiguousAnchors = ambiguous
		return table, nil
	}

	return nil, fmt.Errorf("%w: tried %s", ErrNoTableText, strings.Join(tried, ", "))
}
