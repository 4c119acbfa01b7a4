// Package main provides the CLI entry point for isoextract.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/layouts"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/output"
	"github.com/phuslu/log"
	"github.com/spf13/cobra"
)

const defaultOutputName = "extracted_data"

var (
	outputPath  string
	format      string
	layoutsPath string
	workers     int
	timeout     time.Duration
	logLevel    string
	pretty      bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "isoextract [folder]",
		Short: "Extract line-list tables from isometric drawing PDFs",
		Long: `isoextract locates the line-list table and the ISO drawing / revision
number fields on every PDF in a folder and writes one combined table.
Without a folder argument the path is read from standard input.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <folder>/extracted_data.csv)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "Output format: csv, xlsx, json (default: from output extension)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Print the JSON report to stdout")
	rootCmd.PersistentFlags().StringVar(&layoutsPath, "layouts", "", "Layout file (TOML or YAML) overriding keywords, columns and regions")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "Documents processed concurrently (default: number of CPUs)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-document timeout, e.g. 30s (default: none)")

	rootCmd.AddCommand(newOCRCmd())
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	folder, err := resolveFolder(cmd, args)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr())

	opts := isoextract.DefaultOptions()
	opts.Logger = logger
	opts.Timeout = timeout
	if workers > 0 {
		opts.Workers = workers
	}
	cfg, err := loadLayouts()
	if err != nil {
		return err
	}
	opts.Layouts = cfg

	dest, outFormat, err := resolveOutput(folder, output.FormatCSV)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := isoextract.ExtractFolder(ctx, folder, opts)
	return finishBatch(cmd, logger, dest, outFormat, result, err)
}

// finishBatch writes the result of a batch run. An interrupted run still
// writes the documents completed so far and then reports the interruption.
func finishBatch(cmd *cobra.Command, logger *log.Logger, dest string, outFormat output.Format, result *models.BatchResult, err error) error {
	var interrupted error
	switch {
	case errors.Is(err, isoextract.ErrNoDocuments):
		logger.Warn().Err(err).Msg("no PDF files found")
		return nil
	case errors.Is(err, isoextract.ErrNoResults):
		logger.Warn().Int("skipped", len(result.Files)).Msg("no data extracted, nothing written")
		return nil
	case result != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)):
		logger.Warn().
			Int("succeeded", result.Succeeded()).
			Int("skipped", len(result.Failed())).
			Msg("interrupted")
		if result.Succeeded() == 0 {
			return fmt.Errorf("extraction interrupted: %w", err)
		}
		interrupted = err
	case err != nil:
		return fmt.Errorf("extraction failed: %w", err)
	}

	if err := output.WriteFile(dest, outFormat, result.Sheet(), result); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info().Str("output", dest).Int("rows", len(result.Rows())).Msg("saved")

	if pretty {
		data, err := output.ToJSON(result, true)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d succeeded, %d skipped\n",
		dest, result.Succeeded(), len(result.Failed()))

	if interrupted != nil {
		return fmt.Errorf("extraction interrupted, partial results written: %w", interrupted)
	}
	return nil
}

// loadLayouts returns the layouts from --layouts, or the defaults.
func loadLayouts() (*layouts.Config, error) {
	if layoutsPath == "" {
		cfg := layouts.Default()
		return &cfg, nil
	}
	return layouts.Load(layoutsPath)
}

// resolveFolder takes the folder from args or prompts for it.
func resolveFolder(cmd *cobra.Command, args []string) (string, error) {
	var folder string
	if len(args) == 1 {
		folder = args[0]
	} else {
		fmt.Fprint(cmd.OutOrStdout(), "PDF folder path: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		folder = strings.TrimSpace(line)
	}

	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("folder not found: %s", folder)
	}
	return folder, nil
}

// resolveOutput picks the output path and format from the flags.
func resolveOutput(folder string, fallback output.Format) (string, output.Format, error) {
	var f output.Format
	if format != "" {
		var err error
		if f, err = output.ParseFormat(format); err != nil {
			return "", "", err
		}
	}

	dest := outputPath
	if dest == "" {
		if f == "" {
			f = fallback
		}
		return filepath.Join(folder, defaultOutputName+"."+string(f)), f, nil
	}
	if f == "" {
		var err error
		if f, err = output.FormatFromPath(dest); err != nil {
			return "", "", err
		}
	}
	return dest, f, nil
}

func newLogger(w io.Writer) *log.Logger {
	return &log.Logger{
		Level:  log.ParseLevel(logLevel),
		Writer: &log.ConsoleWriter{Writer: w, ColorOutput: w == os.Stderr},
	}
}
