// Package output writes extracted tables as CSV, XLSX or JSON.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
)

// Format is an output file format.
type Format string

const (
	// FormatCSV writes the header and rows as comma-separated values.
	FormatCSV Format = "csv"
	// FormatXLSX writes a single-sheet workbook.
	FormatXLSX Format = "xlsx"
	// FormatJSON writes the full run report.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatCSV, FormatXLSX, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("invalid format: %s (must be csv, xlsx, or json)", s)
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// WriteCSV writes the header and rows of sheet as CSV.
func WriteCSV(w io.Writer, sheet models.Sheet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(sheet.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(sheet.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// ToJSON serializes v, indented when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WriteFile writes sheet to path in the given format. JSON output serializes
// report instead when it is non-nil.
func WriteFile(path string, format Format, sheet models.Sheet, report any) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(path, sheet)
	case FormatJSON:
		var v any = sheet
		if report != nil {
			v = report
		}
		data, err := ToJSON(v, true)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0644)
	case FormatCSV:
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := WriteCSV(f, sheet); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return fmt.Errorf("invalid format: %s", format)
}
