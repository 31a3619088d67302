package life

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidSize is returned by Config.Validate for non-positive dimensions.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// Config holds the engine dimensions and step parallelism.
type Config struct {
	Rows    int
	Columns int
	// Workers > 1 splits each step into that many row bands computed
	// concurrently.
	Workers int
}

// DefaultConfig returns the standard 32x32 single-threaded configuration.
func DefaultConfig() Config {
	return Config{Rows: 32, Columns: 32, Workers: 1}
}

// Validate reports whether the configuration describes a usable grid.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Rows, c.Columns)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Malformed or non-positive values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Columns = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	return c
}
