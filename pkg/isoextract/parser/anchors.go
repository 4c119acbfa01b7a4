package parser

import (
	"fmt"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/pdfdoc"
)

// FindAnchors returns every occurrence of keyword in doc, page by page.
// Each box is rotation-corrected with its own page's geometry.
// An absent keyword yields an empty slice and no error.
func FindAnchors(doc pdfdoc.Document, keyword string) ([]models.Anchor, error) {
	var anchors []models.Anchor
	for i := 0; i < doc.NumPages(); i++ {
		page, err := doc.Page(i)
		if err != nil {
			return nil, fmt.Errorf("searching %q: %w", keyword, err)
		}
		for _, r := range page.Search(keyword) {
			anchors = append(anchors, models.Anchor{
				Page: i,
				Rect: CorrectRect(r, page.Rotation(), page.Width(), page.Height()),
			})
		}
	}
	return anchors, nil
}

// AnchorPages returns the distinct pages of anchors in first-seen order.
func AnchorPages(anchors []models.Anchor) []int {
	var pages []int
	seen := make(map[int]bool)
	for _, a := range anchors {
		if !seen[a.Page] {
			seen[a.Page] = true
			pages = append(pages, a.Page)
		}
	}
	return pages
}
