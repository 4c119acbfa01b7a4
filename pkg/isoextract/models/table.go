package models

// Metadata columns appended after the schema columns.
const (
	ColumnISONo = "ISO_NO"
	ColumnRevNo = "REV.NO"
)

// Schema is the ordered list of expected table columns.
type Schema []string

// DefaultSchema is the column layout of the line-list table printed on
// piping isometric drawings.
var DefaultSchema = Schema{
	"NPS", "SPEC", "OPER.PRESS", "OPER.TEMP", "DESIGN.PRESS", "DESIGN.TEMP",
	"TEST.PRESS", "MEDIUM", "INSULATION.TYPE", "INSULATION.THK", "TRACING.TEMP",
	"PAUT", "UT", "PT", "MT", "PAINTCODE", "PWHT", "STEAMOUT", "TOXIC",
}

// Header returns the schema columns followed by the metadata columns.
func (s Schema) Header() []string {
	header := make([]string, 0, len(s)+2)
	header = append(header, s...)
	return append(header, ColumnISONo, ColumnRevNo)
}

// ExtractedTable is the validated table of a single document.
type ExtractedTable struct {
	// File is the document file name (no directory).
	File string `json:"file"`
	// Layout is the name of the coordinate set the table was read with.
	Layout string `json:"layout"`
	// ISONo is the ISO drawing number text.
	ISONo string `json:"iso_no"`
	// RevNo is the revision number text.
	RevNo string `json:"rev_no"`
	// Rows holds the schema fields of each row followed by ISONo and RevNo.
	Rows [][]string `json:"rows"`
	// AmbiguousAnchors lists keywords that were found on more than one page.
	AmbiguousAnchors []string `json:"ambiguous_anchors,omitempty"`
}
