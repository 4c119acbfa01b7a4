package parser

import (
	"testing"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
)

func TestCorrectRect(t *testing.T) {
	r := models.NewRect(10, 20, 30, 50)
	const width, height = 600.0, 800.0

	tests := []struct {
		rotation int
		expected models.Rect
	}{
		{0, r},
		{90, models.NewRect(20, 570, 50, 590)},
		{180, models.NewRect(570, 750, 590, 780)},
		{270, models.NewRect(750, 10, 780, 30)},
		// Not a valid page rotation: treated as 0.
		{45, r},
		{-90, r},
	}

	for _, tt := range tests {
		result := CorrectRect(r, tt.rotation, width, height)
		if result != tt.expected {
			t.Errorf("CorrectRect(%v, %d) = %v, expected %v", r, tt.rotation, result, tt.expected)
		}
	}
}

func TestCorrectRect180IsSelfInverse(t *testing.T) {
	rects := []models.Rect{
		models.NewRect(39.9, 760.17, 557.48, 820.84),
		models.NewRect(0, 0, 1, 1),
		models.NewRect(100.5, 200.25, 300.75, 400.125),
	}

	for _, r := range rects {
		once := CorrectRect(r, 180, 1190.55, 841.89)
		twice := CorrectRect(once, 180, 1190.55, 841.89)
		if !rectNear(twice, r) {
			t.Errorf("CorrectRect twice at 180 = %v, expected %v", twice, r)
		}
	}
}

func rectNear(a, b models.Rect) bool {
	const eps = 1e-9
	near := func(x, y float64) bool { return x-y < eps && y-x < eps }
	return near(a.X0, b.X0) && near(a.Y0, b.Y0) && near(a.X1, b.X1) && near(a.Y1, b.Y1)
}
