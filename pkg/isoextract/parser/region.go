package parser

import (
	"strings"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/pdfdoc"
)

// ExtractText returns the trimmed text inside r, after correcting r for the
// page rotation. An empty region yields "".
func ExtractText(page pdfdoc.Page, r models.Rect) string {
	clip := CorrectRect(r, page.Rotation(), page.Width(), page.Height())
	return strings.TrimSpace(page.Text(clip))
}
