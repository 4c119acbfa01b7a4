package models

// Sheet is a flat table ready to be written out.
type Sheet struct {
	// Name is the sheet name used by spreadsheet outputs.
	Name string `json:"name"`
	// Header contains the column names.
	Header []string `json:"header"`
	// Rows contains the data rows.
	Rows [][]string `json:"rows"`
}
