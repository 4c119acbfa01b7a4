package models

// CoordinateSet is a named layout variant: the three regions a drawing of
// that layout is read from. Regions are in unrotated page space.
type CoordinateSet struct {
	// Name identifies the layout (e.g. "primary").
	Name string `json:"name" toml:"name" yaml:"name" validate:"required"`
	// Table is the region holding the data table.
	Table Rect `json:"table" toml:"table" yaml:"table"`
	// ISONo is the region holding the ISO drawing number.
	ISONo Rect `json:"iso_no" toml:"iso_no" yaml:"iso_no"`
	// RevNo is the region holding the revision number.
	RevNo Rect `json:"rev_no" toml:"rev_no" yaml:"rev_no"`
}
