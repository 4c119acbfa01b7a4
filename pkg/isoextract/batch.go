package isoextract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/FEKimseongeun/ISO-DRAWING-PDFT-TO-EXCEL/pkg/isoextract/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ListDocuments returns the names of the PDF files in dir, sorted.
// The extension match is case-insensitive.
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// ExtractFolder extracts every PDF in dir. Documents are processed by up to
// opts.Workers goroutines; results keep the sorted file order.
//
// A failing document never aborts the batch. When no document succeeds the
// result is returned together with ErrNoResults. A canceled ctx returns the
// partial result and ctx.Err().
func ExtractFolder(ctx context.Context, dir string, opts Options) (*models.BatchResult, error) {
	names, err := ListDocuments(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDocuments, dir)
	}

	logger := opts.logger()
	result := &models.BatchResult{
		RunID:  uuid.NewString(),
		Folder: dir,
		Header: opts.LayoutConfig().Columns.Header(),
		Files:  make([]models.FileResult, len(names)),
	}
	logger.Info().Str("run", result.RunID).Str("folder", dir).Int("documents", len(names)).Msg("batch started")

	start := time.Now()
	g := new(errgroup.Group)
	g.SetLimit(opts.workers())
	for i, name := range names {
		g.Go(func() error {
			result.Files[i] = extractFile(ctx, filepath.Join(dir, name), opts)
			return nil
		})
	}
	_ = g.Wait()

	succeeded := result.Succeeded()
	logger.Info().
		Str("run", result.RunID).
		Int("succeeded", succeeded).
		Int("skipped", len(names)-succeeded).
		Int("rows", len(result.Rows())).
		Dur("elapsed", time.Since(start)).
		Msg("batch finished")

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if succeeded == 0 {
		return result, ErrNoResults
	}
	return result, nil
}

// extractFile processes one document and converts any failure into a
// skipped FileResult.
func extractFile(ctx context.Context, path string, opts Options) models.FileResult {
	name := filepath.Base(path)
	logger := opts.logger()
	logger.Info().Str("file", name).Msg("processing")

	table, err := extractContext(ctx, path, opts)
	if err != nil {
		kind := KindOf(err)
		logger.Warn().Str("file", name).Str("kind", string(kind)).Str("reason", Reason(err)).Msg("skipped")
		return models.FileResult{
			Name:   name,
			Kind:   string(kind),
			Reason: Reason(err),
			Err:    err,
		}
	}

	if len(table.AmbiguousAnchors) > 0 {
		logger.Warn().Str("file", name).Strs("keywords", table.AmbiguousAnchors).
			Msg("keyword found on several pages, using the first occurrence")
	}
	logger.Info().Str("file", name).Str("layout", table.Layout).Int("rows", len(table.Rows)).Msg("extracted")
	return models.FileResult{Name: name, Table: table}
}

// extractContext runs Extract, giving up when ctx is done or the per-document
// timeout expires. An abandoned extraction still closes its document when
// it returns; after a timeout the call waits for that unless ctx ends first.
func extractContext(ctx context.Context, path string, opts Options) (*models.ExtractedTable, error) {
	name := filepath.Base(path)
	if err := ctx.Err(); err != nil {
		return nil, NewExtractionError(name, KindOf(err), err)
	}
	batch := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	type outcome struct {
		table *models.ExtractedTable
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		table, err := Extract(path, opts)
		done <- outcome{table, err}
	}()

	select {
	case o := <-done:
		return o.table, o.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			// Hold the worker slot until the abandoned extraction returns so
			// that at most opts.Workers documents are open at once.
			select {
			case <-done:
			case <-batch.Done():
			}
			return nil, NewExtractionError(name, KindTimeout, fmt.Errorf("%w: %w", ErrTimeout, ctx.Err()))
		}
		return nil, NewExtractionError(name, KindCanceled, ctx.Err())
	}
}
