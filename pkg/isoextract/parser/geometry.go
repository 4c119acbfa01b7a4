package parser

import "github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"

// CorrectRect maps r from unrotated page space into the displayed space of a
// page rotated by rotation degrees. width and height are the unrotated page
// dimensions. Any rotation other than 90, 180 or 270 returns r unchanged.
func CorrectRect(r models.Rect, rotation int, width, height float64) models.Rect {
	switch rotation {
	case 90:
		return models.NewRect(r.Y0, width-r.X1, r.Y1, width-r.X0)
	case 180:
		return models.NewRect(width-r.X1, height-r.Y1, width-r.X0, height-r.Y0)
	case 270:
		return models.NewRect(height-r.Y1, r.X0, height-r.Y0, r.X1)
	default:
		return r
	}
}
