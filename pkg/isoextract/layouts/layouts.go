// Package layouts holds the named coordinate sets, anchor keywords and column
// schema that describe the known drawing layouts.
//
// The compiled-in defaults cover the two title-block layouts seen so far.
// Additional layouts are added through a TOML or YAML file:
//
//	columns = ["NPS", "SPEC", ...]
//
//	[keywords]
//	table = "NPS"
//	markers = ["TOXIC", "KOSHA"]
//	iso_no = "ISO DWG. NO."
//	rev_no = "REV. NO"
//
//	[[profiles]]
//	name = "primary"
//	table  = { x0 = 39.9, y0 = 760.17, x1 = 557.48, y1 = 820.84 }
//	iso_no = { x0 = 960.69, y0 = 811.56, x1 = 1500.69, y1 = 816.88 }
//	rev_no = { x0 = 1156.47, y0 = 812.65, x1 = 1172.77, y1 = 820.26 }
package layouts

import (
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
)

// Keywords are the literal anchors a drawing must contain.
type Keywords struct {
	// Table marks the page the data table is read from.
	Table string `json:"table" toml:"table" yaml:"table" validate:"required"`
	// Markers must be present but do not select a page.
	Markers []string `json:"markers" toml:"markers" yaml:"markers" validate:"dive,required"`
	// ISONo labels the ISO drawing number field.
	ISONo string `json:"iso_no" toml:"iso_no" yaml:"iso_no" validate:"required"`
	// RevNo labels the revision number field.
	RevNo string `json:"rev_no" toml:"rev_no" yaml:"rev_no" validate:"required"`
}

// Required returns every keyword in the order they are searched.
func (k Keywords) Required() []string {
	required := make([]string, 0, len(k.Markers)+3)
	required = append(required, k.Table)
	required = append(required, k.Markers...)
	return append(required, k.ISONo, k.RevNo)
}

// Config is the complete layout description.
type Config struct {
	// Columns is the expected table schema.
	Columns models.Schema `json:"columns" toml:"columns" yaml:"columns" validate:"required,min=1,dive,required"`
	// Keywords are the anchors searched in each document.
	Keywords Keywords `json:"keywords" toml:"keywords" yaml:"keywords"`
	// Profiles are tried in order; the first with table text wins.
	Profiles []models.CoordinateSet `json:"profiles" toml:"profiles" yaml:"profiles" validate:"required,min=1,unique=Name,dive"`
}

// Profile returns the coordinate set with the given name.
func (c *Config) Profile(name string) (models.CoordinateSet, bool) {
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return models.CoordinateSet{}, false
}

// Default returns the built-in layouts: "primary" for A3 drawings with the
// line-list table in the bottom-left corner and "fallback" for the smaller
// title block.
func Default() Config {
	return Config{
		Columns: append(models.Schema(nil), models.DefaultSchema...),
		Keywords: Keywords{
			Table:   "NPS",
			Markers: []string{"TOXIC", "KOSHA"},
			ISONo:   "ISO DWG. NO.",
			RevNo:   "REV. NO",
		},
		Profiles: []models.CoordinateSet{
			{
				Name:  "primary",
				Table: models.NewRect(39.89999771118164, 760.1726684570312, 557.47998046875, 820.8424682617188),
				ISONo: models.NewRect(960.6903686523438, 811.55810546875, 1500.6903686523438, 816.8818969726562),
				RevNo: models.NewRect(1156.469970703125, 812.6487426757812, 1172.7728271484375, 820.2630004882812),
			},
			{
				Name:  "fallback",
				Table: models.NewRect(10.4000244140625, 535.4000244140625, 389.02935546875, 567.79730224609375),
				ISONo: models.NewRect(687.4000244140625, 565.4000244140625, 780.02935546875, 580.79730224609375),
				RevNo: models.NewRect(820.4000244140625, 575.4000244140625, 829.02935546875, 579.79730224609375),
			},
		},
	}
}
