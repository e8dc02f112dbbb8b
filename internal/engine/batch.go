package engine

import (
	"context"
	"fmt"
	"runtime"

	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/source"
	"golang.org/x/sync/errgroup"
)

// AnalyzePaths loads and scores every path concurrently. Results keep the
// order of paths. The first failure cancels the remaining work.
func (e *Engine) AnalyzePaths(ctx context.Context, paths []string, maxBytes int64) ([]*analysis.Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	results := make([]*analysis.Result, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, p := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			f, err := source.Load(p, maxBytes)
			if err != nil {
				return err
			}
			r, err := e.AnalyzeFile(f)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("engine.AnalyzePaths: %w", err)
	}
	return results, nil
}
