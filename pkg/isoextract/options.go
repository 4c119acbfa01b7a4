// Package isoextract extracts the line-list table and title-block fields from
// piping isometric drawings (PDF) and aggregates them across a folder.
package isoextract

import (
	"io"
	"runtime"
	"time"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/layouts"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/pdfdoc"
	"github.com/phuslu/log"
)

// Options configures extraction behavior.
type Options struct {
	// Layouts holds keywords, schema and coordinate sets.
	// If nil, layouts.Default() is used.
	Layouts *layouts.Config
	// Open opens a document. If nil, pdfdoc.Open is used.
	Open pdfdoc.Opener
	// Workers is the number of documents processed concurrently.
	// Values below 1 mean one.
	Workers int
	// Timeout bounds the processing of a single document. Zero disables it.
	// A timed-out document is recorded as failed at once, but its worker
	// stays busy until the underlying read returns or the batch is canceled.
	Timeout time.Duration
	// Logger receives progress and per-file status. If nil, nothing is logged.
	Logger *log.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	cfg := layouts.Default()
	return Options{
		Layouts: &cfg,
		Open:    pdfdoc.Open,
		Workers: runtime.NumCPU(),
	}
}

var discard = &log.Logger{Writer: log.IOWriter{Writer: io.Discard}}

// LayoutConfig returns the layout configuration in effect.
func (o Options) LayoutConfig() *layouts.Config {
	if o.Layouts != nil {
		return o.Layouts
	}
	cfg := layouts.Default()
	return &cfg
}

func (o Options) opener() pdfdoc.Opener {
	if o.Open != nil {
		return o.Open
	}
	return pdfdoc.Open
}

func (o Options) workers() int {
	if o.Workers < 1 {
		return 1
	}
	return o.Workers
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return discard
}
