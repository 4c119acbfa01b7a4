package parser

import (
	"testing"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
)

func TestParseRect(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Rect
		wantErr  bool
	}{
		{"10,20,30,40", models.NewRect(10, 20, 30, 40), false},
		{" 39.9, 760.5 ,557.48,820.84 ", models.NewRect(39.9, 760.5, 557.48, 820.84), false},
		{"10,20,30", models.Rect{}, true},
		{"10,20,x,40", models.Rect{}, true},
		{"30,20,10,40", models.Rect{}, true},
	}

	for _, tt := range tests {
		result, err := ParseRect(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRect(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseRect(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestParsePixelRect(t *testing.T) {
	tests := []struct {
		input    string
		expected models.PixelRect
		wantErr  bool
	}{
		{"10,20,110,220", models.PixelRect{Left: 10, Top: 20, Right: 110, Bottom: 220}, false},
		{"110,220,10,20", models.PixelRect{Left: 10, Top: 20, Right: 110, Bottom: 220}, false},
		{"1.5,2,3,4", models.PixelRect{}, true},
		{"", models.PixelRect{}, true},
	}

	for _, tt := range tests {
		result, err := ParsePixelRect(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePixelRect(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParsePixelRect(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestUnitConversions(t *testing.T) {
	if got := ZoomToDPI(2); got != 144 {
		t.Errorf("ZoomToDPI(2) = %v, expected 144", got)
	}
	if got := PixelsToPoints(300, 2); got != 150 {
		t.Errorf("PixelsToPoints(300, 2) = %v, expected 150", got)
	}
	if got := PointsToPixels(150.4, 2); got != 301 {
		t.Errorf("PointsToPixels(150.4, 2) = %v, expected 301", got)
	}
}
