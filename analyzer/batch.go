package analyzer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// AnalyzeFiles analyses files concurrently, each file in an independent session.
// Results follow URLs order.
func (a *Analyzer) AnalyzeFiles(ctx context.Context, URLs []string, jobs int) ([]*Result, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]*Result, len(URLs))
	if len(URLs) == 0 {
		return results, nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(URLs)))
	for i, URL := range URLs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := a.AnalyzeFile(gctx, URL)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
