package isoextract

import (
	"context"
	"errors"
	"fmt"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/parser"
)

// Kind classifies why a document was skipped.
type Kind string

const (
	// KindOpen means the document could not be opened or parsed.
	KindOpen Kind = "open-error"
	// KindMissingAnchor means a required keyword is absent.
	KindMissingAnchor Kind = "missing-anchor"
	// KindNoTableText means no layout profile yielded table text.
	KindNoTableText Kind = "no-table-text"
	// KindEmptyTable means the table text had no usable rows.
	KindEmptyTable Kind = "empty-table"
	// KindSchemaMismatch means a row did not match the column schema.
	KindSchemaMismatch Kind = "schema-mismatch"
	// KindTimeout means the per-document timeout expired.
	KindTimeout Kind = "timeout"
	// KindCanceled means the batch was canceled before the document finished.
	KindCanceled Kind = "canceled"
	// KindUnknown is any other failure.
	KindUnknown Kind = "error"
)

// ErrOpen indicates the document cannot be opened or parsed.
var ErrOpen = errors.New("cannot open document")

// ErrMissingAnchor indicates a required keyword was not found anywhere.
var ErrMissingAnchor = errors.New("required keyword not found")

// ErrNoTableText indicates every layout's table region was empty.
var ErrNoTableText = errors.New("no table text in any layout")

// ErrEmptyTable indicates table text without usable rows.
var ErrEmptyTable = parser.ErrEmptyTable

// ErrSchemaMismatch indicates a row with the wrong number of fields.
var ErrSchemaMismatch = parser.ErrSchemaMismatch

// ErrTimeout indicates the per-document timeout expired.
var ErrTimeout = errors.New("document processing timed out")

// ErrNoDocuments indicates a folder without PDF files.
var ErrNoDocuments = errors.New("no PDF documents found")

// ErrNoResults indicates that no document in a batch produced a table.
var ErrNoResults = errors.New("no data extracted")

// ExtractionError records why a single document was skipped.
type ExtractionError struct {
	File string
	Kind Kind
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.File, e.Kind, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(file string, kind Kind, err error) *ExtractionError {
	return &ExtractionError{
		File: file,
		Kind: kind,
		Err:  err,
	}
}

// KindOf classifies err. ExtractionErrors report their own kind; other
// errors are matched against the sentinels.
func KindOf(err error) Kind {
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee.Kind
	}

	switch {
	case errors.Is(err, ErrOpen):
		return KindOpen
	case errors.Is(err, ErrMissingAnchor):
		return KindMissingAnchor
	case errors.Is(err, ErrNoTableText):
		return KindNoTableText
	case errors.Is(err, ErrEmptyTable):
		return KindEmptyTable
	case errors.Is(err, ErrSchemaMismatch):
		return KindSchemaMismatch
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, context.Canceled):
		return KindCanceled
	}
	return KindUnknown
}

// Reason returns the short reason of err, without the file prefix.
func Reason(err error) string {
	var ee *ExtractionError
	if errors.As(err, &ee) && ee.Err != nil {
		return ee.Err.Error()
	}
	return err.Error()
}
