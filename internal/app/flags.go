package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"conway-ca/pkg/core"
	"conway-ca/pkg/sims/life"
)

// ErrUnknownPattern is returned when -pattern names no registered pattern.
var ErrUnknownPattern = errors.New("unknown pattern")

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Rows     int
	Cols     int
	Workers  int
	Pattern  string
	Random   bool
	Seed     int64
	Scale    int
	Tick     time.Duration
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Rows:     def.Rows,
		Cols:     def.Columns,
		Workers:  def.Workers,
		Pattern:  "demo",
		Seed:     42,
		Scale:    16,
		Tick:     core.DefaultTick,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands computed concurrently per step")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, `initial pattern ("empty" for a blank grid)`)
	fs.BoolVar(&c.Random, "random", c.Random, "seed the grid randomly instead of from -pattern")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random seeding and resets")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "interval between generations")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// Engine returns the engine configuration described by the flags.
func (c *Config) Engine() life.Config {
	return life.Config{Rows: c.Rows, Columns: c.Cols, Workers: c.Workers}
}

// NewEngine validates the configuration and constructs the initial engine.
func (c *Config) NewEngine() (*life.Life, error) {
	cfg := c.Engine()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if c.Random {
		return life.NewRandom(cfg, core.NewRNG(c.Seed)), nil
	}
	if c.Pattern == "" || c.Pattern == "empty" {
		return life.New(cfg), nil
	}
	cells, ok := life.Pattern(c.Pattern)
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownPattern, c.Pattern, life.Patterns())
	}
	return life.FromCells(cfg, cells), nil
}

// Logger builds a text logger writing to w at the configured level. An
// unrecognised level falls back to info and is reported once.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, ok := core.ParseLevel(c.LogLevel)
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	if !ok {
		l.Warn("unknown log level, using info", "level", c.LogLevel)
	}
	return l
}
