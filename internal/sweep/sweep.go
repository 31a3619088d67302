// Package sweep runs many randomly seeded grids to completion in parallel and
// reports how each one ended.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"

	"conway-ca/pkg/core"
	"conway-ca/pkg/sims/life"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidRuns is returned by Run for a negative run count.
var ErrInvalidRuns = errors.New("run count must not be negative")

// Options controls a sweep.
type Options struct {
	Grid     life.Config
	BaseSeed int64
	Runs     int
	Steps    int
	Workers  int
}

// Result describes one run.
type Result struct {
	Seed        int64
	Initial     int
	Population  int
	Generations int
	// SettledAt is the generation at which the grid repeated a state from one
	// or two generations earlier, or -1 if it never did within Steps.
	SettledAt int
	// Period is 1 for still lifes, 2 for period-2 oscillators and 0 otherwise.
	Period int
	Final  life.Grid
}

// Settled reports whether the run reached a still or period-2 state.
func (r Result) Settled() bool { return r.SettledAt >= 0 }

// RunOne simulates a single seed for up to steps generations, stopping early
// once the grid settles.
func RunOne(cfg life.Config, seed int64, steps int) Result {
	engine := life.NewRandom(cfg, core.NewRNG(seed))
	res := Result{Seed: seed, Initial: engine.Population(), SettledAt: -1}

	prev1 := slices.Clone(engine.Cells())
	var prev2 []life.CellState
	for gen := 1; gen <= steps; gen++ {
		engine.Step()
		res.Generations = gen
		cur := engine.Cells()
		if slices.Equal(cur, prev1) {
			res.SettledAt, res.Period = gen, 1
			break
		}
		if prev2 != nil && slices.Equal(cur, prev2) {
			res.SettledAt, res.Period = gen, 2
			break
		}
		// Recycle the oldest buffer for the next comparison.
		if prev2 == nil {
			prev2 = make([]life.CellState, len(cur))
		}
		copy(prev2, prev1)
		copy(prev1, cur)
	}
	res.Population = engine.Population()
	res.Final = engine.Snapshot()
	return res
}

// Run executes opts.Runs seeds, BaseSeed through BaseSeed+Runs-1, on up to
// opts.Workers goroutines. Results are ordered by seed. A cancelled context
// stops scheduling new runs and returns the context error.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if err := opts.Grid.Validate(); err != nil {
		return nil, err
	}
	if opts.Runs < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRuns, opts.Runs)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	log := core.Logger()
	results := make([]Result, opts.Runs)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < opts.Runs; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			seed := opts.BaseSeed + int64(i)
			results[i] = RunOne(opts.Grid, seed, opts.Steps)
			log.Debug("run finished", "seed", seed, "population", results[i].Population, "settled_at", results[i].SettledAt)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Top returns the n results with the largest final population, ties broken
// by seed.
func Top(results []Result, n int) []Result {
	sorted := slices.Clone(results)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Population != sorted[j].Population {
			return sorted[i].Population > sorted[j].Population
		}
		return sorted[i].Seed < sorted[j].Seed
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Summary aggregates a set of results.
type Summary struct {
	Runs           int
	Settled        int
	StillLifes     int
	Oscillators    int
	MeanPopulation float64
	MeanSettledAt  float64
}

// Summarize computes aggregate statistics.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results)}
	if len(results) == 0 {
		return s
	}
	var pop, settled int
	for _, r := range results {
		pop += r.Population
		if !r.Settled() {
			continue
		}
		s.Settled++
		settled += r.SettledAt
		switch r.Period {
		case 1:
			s.StillLifes++
		case 2:
			s.Oscillators++
		}
	}
	s.MeanPopulation = float64(pop) / float64(len(results))
	if s.Settled > 0 {
		s.MeanSettledAt = float64(settled) / float64(s.Settled)
	}
	return s
}
