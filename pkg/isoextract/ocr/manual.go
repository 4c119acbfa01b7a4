package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/parser"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/pdfdoc"
	"github.com/google/uuid"
	"github.com/phuslu/log"
)

// Where a result's text came from.
const (
	SourceTextLayer = "text-layer"
	SourceOCR       = "ocr"
)

// Column names of the OCR output.
const (
	ColumnFileName      = "FileName"
	ColumnExtractedText = "ExtractedText"
)

// Options configures a folder OCR run.
type Options struct {
	// Rasterizer renders pages. If nil, Pdftoppm{} is used.
	Rasterizer Rasterizer
	// Recognizer reads text from the cropped region. It may be nil only
	// when Open is set.
	Recognizer Recognizer
	// Open, if set, reads the PDF text layer inside the selection first.
	// OCR runs only when the text layer is empty there.
	Open pdfdoc.Opener
	// Logger receives per-file status. If nil, nothing is logged.
	Logger *log.Logger
}

// Result is the OCR outcome for one document.
type Result struct {
	FileName      string `json:"FileName"`
	ExtractedText string `json:"ExtractedText"`
	Source        string `json:"source,omitempty"`
	Err           error  `json:"-"`
}

// Report is the outcome of a folder run.
type Report struct {
	RunID     string    `json:"run_id"`
	Folder    string    `json:"folder"`
	Selection Selection `json:"selection"`
	Results   []Result  `json:"results"`
}

// Sheet returns the results as a two-column table.
func (r *Report) Sheet() models.Sheet {
	rows := make([][]string, len(r.Results))
	for i, res := range r.Results {
		rows[i] = []string{res.FileName, res.ExtractedText}
	}
	return models.Sheet{
		Name:   "extracted_data",
		Header: []string{ColumnFileName, ColumnExtractedText},
		Rows:   rows,
	}
}

// Failed returns the number of documents whose OCR failed.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

var discard = &log.Logger{Writer: log.IOWriter{Writer: io.Discard}}

// Select renders the first page of path and drives a session with a scripted
// drag from (r.Left, r.Top) to (r.Right, r.Bottom).
func Select(ctx context.Context, rast Rasterizer, path string, zoom float64, r models.PixelRect) (Selection, error) {
	if rast == nil {
		rast = Pdftoppm{}
	}
	img, err := rast.Render(ctx, path, 0, zoom)
	if err != nil {
		return Selection{}, fmt.Errorf("rendering %s: %w", filepath.Base(path), err)
	}
	s := NewSession(zoom, img.Bounds())
	s.Press(r.Left, r.Top)
	s.Drag(r.Right, r.Bottom)
	s.Release(r.Right, r.Bottom)
	return s.Confirm()
}

// ExtractFolder reads the selected region from the first page of every PDF
// in dir. Documents are processed in sorted order. A failing document is
// logged and recorded with empty text.
func ExtractFolder(ctx context.Context, dir string, sel Selection, opts Options) (*Report, error) {
	if opts.Recognizer == nil && opts.Open == nil {
		return nil, ErrOCRNotEnabled
	}
	names, err := isoextract.ListDocuments(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", isoextract.ErrNoDocuments, dir)
	}

	rast := opts.Rasterizer
	if rast == nil {
		rast = Pdftoppm{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = discard
	}

	report := &Report{
		RunID:     uuid.NewString(),
		Folder:    dir,
		Selection: sel,
		Results:   make([]Result, 0, len(names)),
	}
	start := time.Now()
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		logger.Info().Str("run", report.RunID).Str("file", name).Msg("ocr processing")
		res := Result{FileName: name}
		path := filepath.Join(dir, name)
		if opts.Open != nil {
			res.ExtractedText, res.Err = textLayer(opts.Open, path, sel.PageRect())
			if res.Err != nil {
				logger.Warn().Str("file", name).Err(res.Err).Msg("text layer unreadable")
			}
		}
		if res.ExtractedText != "" {
			res.Source = SourceTextLayer
		} else if opts.Recognizer == nil {
			res.Err = ErrOCRNotEnabled
		} else {
			res.ExtractedText, res.Err = extractRegion(ctx, rast, opts.Recognizer, path, sel)
			res.Source = SourceOCR
		}
		if res.Err != nil {
			res.Source = ""
			logger.Error().Str("run", report.RunID).Str("file", name).Err(res.Err).Msg("ocr failed")
		}
		report.Results = append(report.Results, res)
	}

	logger.Info().
		Str("run", report.RunID).
		Int("documents", len(names)).
		Int("failed", report.Failed()).
		Dur("elapsed", time.Since(start)).
		Msg("ocr finished")
	return report, nil
}

// textLayer reads the embedded text of the first page inside r.
func textLayer(open pdfdoc.Opener, path string, r models.Rect) (string, error) {
	doc, err := open(path)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	page, err := doc.Page(0)
	if err != nil {
		return "", err
	}
	return parser.ExtractText(page, r), nil
}

func extractRegion(ctx context.Context, rast Rasterizer, rec Recognizer, path string, sel Selection) (string, error) {
	img, err := rast.Render(ctx, path, 0, sel.Zoom)
	if err != nil {
		return "", err
	}

	region := clamp(sel.Rect, img.Bounds())
	if region.Dx() < 1 || region.Dy() < 1 {
		return "", nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, crop(img, region)); err != nil {
		return "", err
	}
	text, err := rec.RecognizeImage(buf.Bytes())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// clamp intersects a selection with the image bounds.
func clamp(r models.PixelRect, b image.Rectangle) image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom).Intersect(b)
}

func crop(img image.Image, r image.Rectangle) image.Image {
	if s, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return s.SubImage(r)
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}
