package sintaxis

import (
	"context"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// AnalyseLines classifies every word of every line on a worker pool of
// the given size. Results are returned in line order. A size below 1
// uses runtime.NumCPU() / 2, with a minimum of 1.
//
// Only classification runs concurrently; it reads the frozen lexicon.
func (a *Analyzer) AnalyseLines(ctx context.Context, lines []string, workers int) ([][]WordToken, error) {
	if workers < 1 {
		workers = runtime.NumCPU() / 2
		if workers < 1 {
			workers = 1
		}
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	out := make([][]WordToken, len(lines))
	var wg sync.WaitGroup
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			out[i] = a.AnalyseText(line)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
