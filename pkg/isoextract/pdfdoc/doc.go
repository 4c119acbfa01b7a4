// Package pdfdoc provides the page-level document access used by the
// extraction pipeline: page geometry, literal text search with bounding boxes
// and text extraction clipped to a rectangle.
//
// All coordinates are PDF points in the unrotated page space with the origin
// at the top-left corner and y growing downwards.
package pdfdoc

import "github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"

// Document is an open, paged document.
type Document interface {
	// NumPages returns the number of pages.
	NumPages() int
	// Page returns the page at the zero-based index.
	Page(index int) (Page, error)
	// Close releases the document. Pages must not be used afterwards.
	Close() error
}

// Page is a single page of a Document.
type Page interface {
	// Rotation is the display rotation in degrees (0, 90, 180 or 270).
	Rotation() int
	// Width is the unrotated page width.
	Width() float64
	// Height is the unrotated page height.
	Height() float64
	// Search returns the boxes of every exact occurrence of text, in reading
	// order.
	Search(text string) []models.Rect
	// Text returns the text whose glyphs lie inside clip, one line per row.
	Text(clip models.Rect) string
}

// Opener opens the document stored at path.
type Opener func(path string) (Document, error)

// NormalizeRotation maps any multiple of 90 onto 0, 90, 180 or 270.
// Other values are returned unchanged.
func NormalizeRotation(deg int) int {
	if deg%90 != 0 {
		return deg
	}
	return ((deg % 360) + 360) % 360
}
