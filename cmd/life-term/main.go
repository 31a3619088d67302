package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"conway-ca/internal/app"
	"conway-ca/internal/term"
	"conway-ca/pkg/core"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logFile := flag.String("log-file", "", "write logs to this file (the terminal is used for drawing)")
	flag.Parse()

	if err := run(cfg, *logFile); err != nil {
		fmt.Fprintln(os.Stderr, "life-term:", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config, logFile string) error {
	var w io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	core.SetLogger(cfg.Logger(w))

	engine, err := cfg.NewEngine()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return term.New(screen, app.NewSession(engine, cfg.Seed), cfg.Tick).Run(ctx)
}
