// Package parser implements the region extraction steps: rotation
// correction, keyword anchors, clipped text and table validation.
package parser

import "math"

// PointsPerInch is the density of PDF user space.
// A page rendered at zoom z has 72*z pixels per inch, so one point maps to z
// pixels.
const PointsPerInch = 72

// ZoomToDPI returns the raster resolution for a zoom factor.
func ZoomToDPI(zoom float64) float64 {
	return zoom * PointsPerInch
}

// PixelsToPoints converts a pixel coordinate of a page rendered at zoom back
// to page points.
func PixelsToPoints(px int, zoom float64) float64 {
	return float64(px) / zoom
}

// PointsToPixels converts page points to the nearest pixel at zoom.
func PointsToPixels(pt, zoom float64) int {
	return int(math.Round(pt * zoom))
}
