package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"conway-ca/internal/render"
	"conway-ca/internal/sweep"
	"conway-ca/pkg/core"
	"conway-ca/pkg/sims/life"
)

func main() {
	runs := flag.Int("runs", 64, "number of random seeds to simulate")
	steps := flag.Int("steps", 1000, "maximum generations per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	rows := flag.Int("rows", 32, "grid rows")
	cols := flag.Int("cols", 32, "grid columns")
	seed := flag.Int64("seed", 1, "seed of the first run; run i uses seed+i")
	top := flag.Int("top", 5, "number of results to list")
	pngPath := flag.String("png", "", "write the final grid of the most populated run to this PNG file")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	level, ok := core.ParseLevel(*logLevel)
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	log := core.Logger()
	if !ok {
		log.Warn("unknown log level, using info", "level", *logLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := sweep.Options{
		Grid:     life.Config{Rows: *rows, Columns: *cols, Workers: 1},
		BaseSeed: *seed,
		Runs:     *runs,
		Steps:    *steps,
		Workers:  *workers,
	}
	fmt.Printf("Sweeping %d seeds on %dx%d (%d workers, up to %d steps)\n", opts.Runs, *rows, *cols, opts.Workers, opts.Steps)

	start := time.Now()
	results, err := sweep.Run(ctx, opts)
	if err != nil {
		log.Error("sweep failed", "err", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	best := sweep.Top(results, *top)
	fmt.Printf("\nTop %d results (elapsed %s):\n", len(best), elapsed.Round(time.Millisecond))
	for i, r := range best {
		settled := "never"
		if r.Settled() {
			settled = fmt.Sprintf("gen %d (period %d)", r.SettledAt, r.Period)
		}
		fmt.Printf("%2d) seed=%d initial=%d final=%d generations=%d settled=%s\n",
			i+1, r.Seed, r.Initial, r.Population, r.Generations, settled)
	}

	sum := sweep.Summarize(results)
	fmt.Printf("\nSettled %d/%d (still %d, period-2 %d), mean final population %.1f, mean settle generation %.1f\n",
		sum.Settled, sum.Runs, sum.StillLifes, sum.Oscillators, sum.MeanPopulation, sum.MeanSettledAt)
	log.Info("sweep finished", "runs", sum.Runs, "settled", sum.Settled, "elapsed", elapsed)

	if *pngPath != "" && len(best) > 0 {
		if err := render.DefaultFrame().SavePNG(*pngPath, best[0].Final); err != nil {
			log.Error("write png", "err", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote final grid of seed %d to %s\n", best[0].Seed, *pngPath)
	}
}
