package ocr

import (
	"errors"
	"image"
	"testing"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionNormalizesDrag(t *testing.T) {
	s := NewSession(2, image.Rect(0, 0, 1684, 2382))
	s.Press(300, 200)
	s.Drag(250, 150)
	assert.Equal(t, models.PixelRect{Left: 250, Top: 150, Right: 300, Bottom: 200}, s.Preview())
	s.Drag(100, 40)
	s.Release(100, 40)

	sel, err := s.Confirm()
	require.NoError(t, err)
	assert.Equal(t, models.PixelRect{Left: 100, Top: 40, Right: 300, Bottom: 200}, sel.Rect)
	assert.Equal(t, 2.0, sel.Zoom)
	assert.Equal(t, 1684, sel.ImageWidth)
	assert.Equal(t, 2382, sel.ImageHeight)
	assert.Equal(t, models.NewRect(50, 20, 150, 100), sel.PageRect())
}

func TestSessionPressDiscardsPreviousDrag(t *testing.T) {
	s := NewSession(2, image.Rect(0, 0, 100, 100))
	s.Press(0, 0)
	s.Release(50, 50)
	s.Press(10, 10)

	_, err := s.Confirm()
	assert.True(t, errors.Is(err, ErrNoSelection))

	s.Release(20, 30)
	sel, err := s.Confirm()
	require.NoError(t, err)
	assert.Equal(t, models.PixelRect{Left: 10, Top: 10, Right: 20, Bottom: 30}, sel.Rect)
}

func TestSessionNoSelection(t *testing.T) {
	tests := []struct {
		name string
		feed func(s *Session)
	}{
		{"nothing", func(s *Session) {}},
		{"never released", func(s *Session) { s.Press(1, 1); s.Drag(40, 40) }},
		{"release without press", func(s *Session) { s.Release(40, 40) }},
		{"zero width", func(s *Session) { s.Press(10, 10); s.Release(10, 50) }},
		{"zero height", func(s *Session) { s.Press(10, 10); s.Release(50, 10) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(2, image.Rect(0, 0, 100, 100))
			tt.feed(s)
			_, err := s.Confirm()
			assert.ErrorIs(t, err, ErrNoSelection)
		})
	}
}

func TestPixelRectFromPage(t *testing.T) {
	tests := []struct {
		rect     models.Rect
		zoom     float64
		expected models.PixelRect
	}{
		{models.NewRect(50, 20, 150, 100), 2, models.PixelRect{Left: 100, Top: 40, Right: 300, Bottom: 200}},
		{models.NewRect(39.9, 760.17, 557.48, 820.84), 2, models.PixelRect{Left: 80, Top: 1520, Right: 1115, Bottom: 1642}},
		{models.NewRect(10, 10, 20, 20), 1.5, models.PixelRect{Left: 15, Top: 15, Right: 30, Bottom: 30}},
	}

	for _, tt := range tests {
		got := PixelRectFromPage(tt.rect, tt.zoom)
		assert.Equal(t, tt.expected, got, "PixelRectFromPage(%v, %v)", tt.rect, tt.zoom)
	}

	sel := Selection{Rect: PixelRectFromPage(models.NewRect(50, 20, 150, 100), 2), Zoom: 2}
	assert.Equal(t, models.NewRect(50, 20, 150, 100), sel.PageRect())
}
