package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
)

// ErrEmptyTable indicates table text without a single non-blank line.
var ErrEmptyTable = errors.New("table text has no rows")

// ErrSchemaMismatch indicates a row whose field count differs from the schema.
var ErrSchemaMismatch = errors.New("row does not match column schema")

// SplitRows splits text into lines and each non-blank line into
// whitespace-separated fields.
func SplitRows(text string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}
	return rows
}

// ParseTable validates tableText against schema and returns the table with
// isoText and revText appended to every row. A single malformed row rejects
// the whole table.
func ParseTable(tableText, isoText, revText string, schema models.Schema) (*models.ExtractedTable, error) {
	rows := SplitRows(tableText)
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	for i, row := range rows {
		if len(row) != len(schema) {
			return nil, fmt.Errorf("%w: row %d has %d fields, expected %d",
				ErrSchemaMismatch, i+1, len(row), len(schema))
		}
	}

	for i := range rows {
		rows[i] = append(rows[i], isoText, revText)
	}

	return &models.ExtractedTable{
		ISONo: isoText,
		RevNo: revText,
		Rows:  rows,
	}, nil
}
