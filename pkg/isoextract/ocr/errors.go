package ocr

import "errors"

var (
	// ErrOCRNotEnabled is returned when OCR support was not compiled in.
	// Rebuild with -tags ocr to enable it.
	ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

	// ErrNoSelection indicates the region selection was never completed or
	// has no area.
	ErrNoSelection = errors.New("no region selected")
)
