package ocr

import (
	"image"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/parser"
)

// Selection is a confirmed region on a page rendered at Zoom.
type Selection struct {
	// Rect is the normalized region in pixels.
	Rect models.PixelRect `json:"rect"`
	// Zoom is the render scale the region was drawn at.
	Zoom float64 `json:"zoom"`
	// ImageWidth and ImageHeight are the size of the rendered page.
	ImageWidth  int `json:"image_width"`
	ImageHeight int `json:"image_height"`
}

// PageRect returns the selection in page points.
func (s Selection) PageRect() models.Rect {
	return models.NewRect(
		parser.PixelsToPoints(s.Rect.Left, s.Zoom),
		parser.PixelsToPoints(s.Rect.Top, s.Zoom),
		parser.PixelsToPoints(s.Rect.Right, s.Zoom),
		parser.PixelsToPoints(s.Rect.Bottom, s.Zoom),
	)
}

// PixelRectFromPage converts a region in page points to pixels of the page
// rendered at zoom.
func PixelRectFromPage(r models.Rect, zoom float64) models.PixelRect {
	return models.PixelRect{
		Left:   parser.PointsToPixels(r.X0, zoom),
		Top:    parser.PointsToPixels(r.Y0, zoom),
		Right:  parser.PointsToPixels(r.X1, zoom),
		Bottom: parser.PointsToPixels(r.Y1, zoom),
	}
}

// Session tracks a drag selection over a rendered page. Feed it pointer
// events and call Confirm once the user accepts.
type Session struct {
	zoom     float64
	bounds   image.Rectangle
	pressed  bool
	start    image.Point
	current  image.Point
	selected models.PixelRect
	released bool
}

// NewSession starts a selection over an image of the given bounds.
func NewSession(zoom float64, bounds image.Rectangle) *Session {
	return &Session{zoom: zoom, bounds: bounds}
}

// Press starts a new drag, discarding any previous one.
func (s *Session) Press(x, y int) {
	s.pressed = true
	s.released = false
	s.start = image.Pt(x, y)
	s.current = s.start
}

// Drag moves the free corner of the drag.
func (s *Session) Drag(x, y int) {
	if s.pressed {
		s.current = image.Pt(x, y)
	}
}

// Release ends the drag at (x, y).
func (s *Session) Release(x, y int) {
	if !s.pressed {
		return
	}
	s.pressed = false
	s.current = image.Pt(x, y)
	s.selected = normalize(s.start, s.current)
	s.released = true
}

// Preview returns the rectangle currently being dragged.
func (s *Session) Preview() models.PixelRect {
	return normalize(s.start, s.current)
}

// Confirm returns the final selection, or ErrNoSelection when no drag was
// released or the region has no area.
func (s *Session) Confirm() (Selection, error) {
	if !s.released || s.selected.IsZero() || s.selected.Dx() < 1 || s.selected.Dy() < 1 {
		return Selection{}, ErrNoSelection
	}
	return Selection{
		Rect:        s.selected,
		Zoom:        s.zoom,
		ImageWidth:  s.bounds.Dx(),
		ImageHeight: s.bounds.Dy(),
	}, nil
}

func normalize(a, b image.Point) models.PixelRect {
	return models.PixelRect{
		Left:   min(a.X, b.X),
		Top:    min(a.Y, b.Y),
		Right:  max(a.X, b.X),
		Bottom: max(a.Y, b.Y),
	}
}
