// Package models defines data structures for drawing table extraction.
package models

import "math"

// Rect is an axis-aligned box in PDF points. The origin is the top-left corner
// of the page and y grows downwards. Whether the box is in unrotated or
// displayed page space depends on where it came from.
type Rect struct {
	// X0 is the left edge.
	X0 float64 `json:"x0" toml:"x0" yaml:"x0"`
	// Y0 is the top edge.
	Y0 float64 `json:"y0" toml:"y0" yaml:"y0"`
	// X1 is the right edge.
	X1 float64 `json:"x1" toml:"x1" yaml:"x1" validate:"gtfield=X0"`
	// Y1 is the bottom edge.
	Y1 float64 `json:"y1" toml:"y1" yaml:"y1" validate:"gtfield=Y0"`
}

// NewRect creates a Rect from its four edges.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// IsEmpty reports whether the rect has no area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Center returns the midpoint of the rect.
func (r Rect) Center() (x, y float64) {
	return (r.X0 + r.X1) / 2, (r.Y0 + r.Y1) / 2
}

// Contains reports whether the point lies inside the rect, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// Union returns the smallest rect covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, o.X0),
		Y0: math.Min(r.Y0, o.Y0),
		X1: math.Max(r.X1, o.X1),
		Y1: math.Max(r.Y1, o.Y1),
	}
}

// PixelRect is a rectangle on a rendered page image.
type PixelRect struct {
	// Left is the left pixel column (inclusive).
	Left int `json:"left"`
	// Top is the top pixel row (inclusive).
	Top int `json:"top"`
	// Right is the right pixel column (exclusive).
	Right int `json:"right"`
	// Bottom is the bottom pixel row (exclusive).
	Bottom int `json:"bottom"`
}

// Dx returns the width in pixels.
func (p PixelRect) Dx() int {
	return p.Right - p.Left
}

// Dy returns the height in pixels.
func (p PixelRect) Dy() int {
	return p.Bottom - p.Top
}

// IsZero reports whether nothing was selected.
func (p PixelRect) IsZero() bool {
	return p == PixelRect{}
}
