// Package batch processes directories of statement files outside the HTTP
// surface, for ad-hoc report runs from the command line.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/ptaxfolio/internal/logger"
	"github.com/guttosm/ptaxfolio/internal/service"
	"github.com/guttosm/ptaxfolio/internal/statement"
)

const maxParallelFiles = 4

// ProcessDirectory runs the full statement pipeline for every .csv file in
// dir, logging one summary per statement.
//
// Behavior:
//   - Files are processed concurrently, bounded by `parallel` (0 = auto up
//     to CPU count, capped at 4; each file triggers one upstream rate fetch).
//   - A statement with no buy trades is logged and skipped, not an error.
//   - The first pipeline failure cancels the remaining files and is
//     returned.
func ProcessDirectory(ctx context.Context, dir string, svc service.HoldingsService, parallel int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no statement files (*.csv) found in %s", dir)
	}

	maxParallel := maxParallelFiles
	if parallel > 0 {
		if parallel > maxParallelFiles {
			parallel = maxParallelFiles
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().Int("files", len(files)).Int("max_parallel", maxParallel).Str("dir", dir).Msg("report run start")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for _, file := range files {
		f := file
		g.Go(func() error {
			start := time.Now()
			base := filepath.Base(f)

			content, err := os.ReadFile(f)
			if err != nil {
				return fmt.Errorf("file %s: %w", base, err)
			}

			trades, descriptions := statement.Parse(string(content))
			if len(trades) == 0 {
				logger.L().Warn().Str("file", base).Msg("no buy trades in statement")
				return nil
			}

			report, err := svc.BuildReport(gctx, trades, descriptions)
			if err != nil {
				return fmt.Errorf("file %s: %w", base, err)
			}

			logger.L().Info().
				Str("file", base).
				Int("year", report.Year).
				Int("trades", report.TotalTrades).
				Int("holdings", len(report.Holdings)).
				Str("total_usd", report.TotalUSD().String()).
				Str("total_brl", report.TotalBRL().String()).
				Dur("elapsed", time.Since(start)).
				Msg("statement processed")
			return nil
		})
	}

	return g.Wait()
}
