//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"conway-ca/internal/app"
	"conway-ca/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := cfg.Logger(os.Stderr)
	core.SetLogger(log)

	engine, err := cfg.NewEngine()
	if err != nil {
		log.Error("cannot build grid", "err", err)
		os.Exit(2)
	}

	session := app.NewSession(engine, cfg.Seed)
	game := app.New(session, cfg)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(w, h)

	log.Info("starting", "rows", cfg.Rows, "cols", cfg.Cols, "pattern", cfg.Pattern, "random", cfg.Random, "tick", cfg.Tick)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}
