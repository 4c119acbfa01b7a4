package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
)

// ParseRect parses "x0,y0,x1,y1" into a Rect in points.
func ParseRect(s string) (models.Rect, error) {
	parts, err := splitFour(s)
	if err != nil {
		return models.Rect{}, err
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return models.Rect{}, fmt.Errorf("invalid coordinate %q: %w", p, err)
		}
		v[i] = f
	}

	r := models.NewRect(v[0], v[1], v[2], v[3])
	if r.IsEmpty() {
		return models.Rect{}, fmt.Errorf("empty rectangle %q", s)
	}
	return r, nil
}

// ParsePixelRect parses "left,top,right,bottom" into a PixelRect.
// Corners may be given in any order; the result is normalized.
func ParsePixelRect(s string) (models.PixelRect, error) {
	parts, err := splitFour(s)
	if err != nil {
		return models.PixelRect{}, err
	}

	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return models.PixelRect{}, fmt.Errorf("invalid pixel coordinate %q: %w", p, err)
		}
		v[i] = n
	}

	return models.PixelRect{
		Left:   min(v[0], v[2]),
		Top:    min(v[1], v[3]),
		Right:  max(v[0], v[2]),
		Bottom: max(v[1], v[3]),
	}, nil
}

func splitFour(s string) ([]string, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("expected 4 comma-separated values, got %d in %q", len(parts), s)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}
