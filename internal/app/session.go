package app

import (
	"log/slog"
	"time"

	"conway-ca/pkg/core"
	"conway-ca/pkg/sims/life"
)

// Command is a driver action decoded from a key press.
type Command int

// Commands understood by Session.Apply.
const (
	CmdNone Command = iota
	CmdQuit
	CmdPause
	CmdResume
	CmdStep
	CmdClear
	CmdReseed
	CmdRandomize
	CmdGrid
)

// CommandForRune maps the shared key bindings to commands.
func CommandForRune(r rune) Command {
	switch r {
	case 'q', 'Q':
		return CmdQuit
	case ' ':
		return CmdPause
	case '\r', '\n':
		return CmdResume
	case 'n', 'N':
		return CmdStep
	case 'c', 'C':
		return CmdClear
	case 'r', 'R':
		return CmdReseed
	case 's', 'S':
		return CmdRandomize
	case 'g', 'G':
		return CmdGrid
	}
	return CmdNone
}

// Session holds the driver-side state around an engine: pause, single-step
// requests and the generation counter. The engine itself has no such state.
type Session struct {
	engine     *life.Life
	seed       int64
	paused     bool
	tickOnce   bool
	showGrid   bool
	generation int
	now        func() time.Time
}

// NewSession wraps engine. seed is used by CmdReseed.
func NewSession(engine *life.Life, seed int64) *Session {
	return &Session{engine: engine, seed: seed, now: time.Now}
}

// Engine returns the wrapped engine.
func (s *Session) Engine() *life.Life { return s.engine }

// Generation returns the number of steps taken since the last reset or clear.
func (s *Session) Generation() int { return s.generation }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// ShowGrid reports whether the grid overlay is enabled.
func (s *Session) ShowGrid() bool { return s.showGrid }

// Advance steps the engine when due and not paused, or when a single step was
// requested. It reports whether a step happened.
func (s *Session) Advance(due bool) bool {
	if !(due && !s.paused) && !s.tickOnce {
		return false
	}
	s.engine.Step()
	s.generation++
	s.tickOnce = false
	return true
}

// Click toggles the cell at p.
func (s *Session) Click(p life.Position) {
	if !s.engine.Size().Contains(p) {
		return
	}
	s.engine.Toggle(p)
	core.Logger().Debug("toggle", "row", p.Row, "col", p.Col, "state", s.engine.At(p))
}

// Reset reseeds the engine randomly from seed and restarts the count.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.engine.Reset(seed)
	s.generation = 0
	s.tickOnce = false
	core.Logger().Debug("reset", "seed", seed, "population", s.engine.Population())
}

// Apply executes cmd and reports whether the driver should quit.
func (s *Session) Apply(cmd Command) (quit bool) {
	switch cmd {
	case CmdQuit:
		return true
	case CmdPause:
		s.paused = !s.paused
	case CmdResume:
		s.paused = false
	case CmdStep:
		s.tickOnce = true
	case CmdClear:
		s.engine.Clear()
		s.generation = 0
		s.tickOnce = false
		core.Logger().Debug("clear")
	case CmdReseed:
		s.Reset(s.seed)
	case CmdRandomize:
		s.Reset(s.now().UnixNano())
	case CmdGrid:
		s.showGrid = !s.showGrid
	}
	return false
}

// Parameters reports the values shown on the status panel.
func (s *Session) Parameters() core.ParameterSnapshot {
	size := s.engine.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{
			core.IntParam("rows", "Rows", size.Rows),
			core.IntParam("cols", "Columns", size.Columns),
			core.IntParam("population", "Population", s.engine.Population()),
		}},
		{Name: "Run", Params: []core.Parameter{
			core.IntParam("generation", "Generation", s.generation),
			core.BoolParam("paused", "Paused", s.paused),
		}},
	}}
}

// LogValue summarises the session for structured logs.
func (s *Session) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generation", s.generation),
		slog.Int("population", s.engine.Population()),
		slog.Bool("paused", s.paused),
	)
}
