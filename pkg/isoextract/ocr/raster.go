package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/parser"
)

// DefaultZoom renders pages at 144 dpi.
const DefaultZoom = 2.0

// Recognizer turns an encoded image into text.
type Recognizer interface {
	RecognizeImage(imageData []byte) (string, error)
}

// Rasterizer renders one page of a PDF. Page numbers start at 0.
type Rasterizer interface {
	Render(ctx context.Context, path string, page int, zoom float64) (image.Image, error)
}

// Pdftoppm renders pages with poppler's pdftoppm.
type Pdftoppm struct {
	// Bin is the executable path. Empty means "pdftoppm" from PATH.
	Bin string
}

// Render implements Rasterizer.
func (p Pdftoppm) Render(ctx context.Context, path string, page int, zoom float64) (image.Image, error) {
	bin := p.Bin
	if bin == "" {
		bin = "pdftoppm"
	}
	tmp, err := os.MkdirTemp("", "isoextract-raster-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmp)

	n := strconv.Itoa(page + 1)
	prefix := filepath.Join(tmp, "page")
	cmd := exec.CommandContext(ctx, bin,
		"-f", n, "-l", n,
		"-r", strconv.FormatFloat(parser.ZoomToDPI(zoom), 'f', -1, 64),
		"-png", "-singlefile",
		path, prefix)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", bin, err, bytes.TrimSpace(stderr.Bytes()))
	}

	f, err := os.Open(prefix + ".png")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}
