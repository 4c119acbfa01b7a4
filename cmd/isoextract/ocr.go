package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/ocr"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/output"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/parser"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/pdfdoc"
	"github.com/spf13/cobra"
)

var (
	region     string
	pageRegion string
	profile    string
	textLayer  bool
	zoom       float64
	lang       string
	pdftoppm   string
)

func newOCRCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ocr [folder]",
		Short: "OCR a fixed region of the first page of every PDF",
		Long: `ocr renders the first page of each PDF, crops the selected region and
runs Tesseract on it. The region is given once for the whole folder, either
in pixels of the page rendered at --zoom, in page points, or as the table
region of a layout profile. Tesseract requires a build with -tags ocr.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runOCR,
	}

	cmd.Flags().StringVar(&region, "region", "", "Pixel region left,top,right,bottom")
	cmd.Flags().StringVar(&pageRegion, "page-region", "", "Region in page points x0,y0,x1,y1")
	cmd.Flags().StringVar(&profile, "profile", "", "Use the table region of this layout profile")
	cmd.Flags().BoolVar(&textLayer, "text-layer", false, "Read embedded PDF text inside the region first, OCR only when empty")
	cmd.Flags().Float64Var(&zoom, "zoom", ocr.DefaultZoom, "Render zoom factor (2 = 144 dpi)")
	cmd.Flags().StringVar(&lang, "lang", "eng", "Tesseract language(s), e.g. eng+kor")
	cmd.Flags().StringVar(&pdftoppm, "pdftoppm", "", "Path to the pdftoppm executable")
	cmd.MarkFlagsMutuallyExclusive("region", "page-region", "profile")
	cmd.MarkFlagsOneRequired("region", "page-region", "profile")
	return cmd
}

func runOCR(cmd *cobra.Command, args []string) error {
	folder, err := resolveFolder(cmd, args)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr())

	rect, err := selectionRect()
	if err != nil {
		return err
	}
	dest, outFormat, err := resolveOutput(folder, output.FormatXLSX)
	if err != nil {
		return err
	}

	opts := ocr.Options{Rasterizer: ocr.Pdftoppm{Bin: pdftoppm}, Logger: logger}
	if textLayer {
		opts.Open = pdfdoc.Open
	}
	client, err := ocr.New()
	switch {
	case err == nil:
		defer client.Close()
		if err := client.SetLanguage(lang); err != nil {
			return err
		}
		opts.Recognizer = client
	case errors.Is(err, ocr.ErrOCRNotEnabled) && textLayer:
		logger.Warn().Msg("OCR not compiled in, using the text layer only")
	default:
		return err
	}

	names, err := isoextract.ListDocuments(folder)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		logger.Warn().Str("folder", folder).Msg("no PDF files found")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sel, err := ocr.Select(ctx, opts.Rasterizer, filepath.Join(folder, names[0]), zoom, rect)
	if errors.Is(err, ocr.ErrNoSelection) {
		logger.Warn().Msg("region has no area, nothing to do")
		return nil
	}
	if err != nil {
		return err
	}
	page := sel.PageRect()
	logger.Info().Str("file", names[0]).
		Float64("x0", page.X0).Float64("y0", page.Y0).Float64("x1", page.X1).Float64("y1", page.Y1).
		Msg("region in page points")

	report, err := ocr.ExtractFolder(ctx, folder, sel, opts)
	if err != nil {
		return fmt.Errorf("ocr failed: %w", err)
	}

	if err := output.WriteFile(dest, outFormat, report.Sheet(), report); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d documents, %d failed\n", dest, len(report.Results), report.Failed())
	return nil
}

// selectionRect returns the pixel region chosen by --region, --page-region
// or --profile.
func selectionRect() (models.PixelRect, error) {
	switch {
	case region != "":
		return parser.ParsePixelRect(region)
	case pageRegion != "":
		r, err := parser.ParseRect(pageRegion)
		if err != nil {
			return models.PixelRect{}, err
		}
		return ocr.PixelRectFromPage(r, zoom), nil
	case profile != "":
		cfg, err := loadLayouts()
		if err != nil {
			return models.PixelRect{}, err
		}
		p, ok := cfg.Profile(profile)
		if !ok {
			return models.PixelRect{}, fmt.Errorf("unknown layout profile: %s", profile)
		}
		return ocr.PixelRectFromPage(p.Table, zoom), nil
	}
	return models.PixelRect{}, errors.New("one of --region, --page-region or --profile is required")
}
