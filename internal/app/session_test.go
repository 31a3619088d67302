package app

import (
	"slices"
	"testing"
	"time"

	"conway-ca/pkg/core"
	"conway-ca/pkg/sims/life"
)

func blinkerSession() *Session {
	cells, _ := life.Pattern("blinker")
	return NewSession(life.FromCells(life.DefaultConfig(), cells), 7)
}

func TestAdvanceRespectsPause(t *testing.T) {
	s := blinkerSession()

	if s.Advance(false) {
		t.Fatal("should not step before the tick is due")
	}
	if !s.Advance(true) || s.Generation() != 1 {
		t.Fatalf("generation = %d, expected 1 after a due tick", s.Generation())
	}

	s.Apply(CmdPause)
	if !s.Paused() {
		t.Fatal("CmdPause should pause")
	}
	if s.Advance(true) {
		t.Fatal("paused session should not step on a due tick")
	}

	s.Apply(CmdStep)
	if !s.Advance(false) {
		t.Fatal("single step should run while paused")
	}
	if s.Advance(false) {
		t.Fatal("single step should only run once")
	}
	if s.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", s.Generation())
	}

	s.Apply(CmdResume)
	if s.Paused() {
		t.Fatal("CmdResume should unpause")
	}
}

func TestClickTogglesInBounds(t *testing.T) {
	s := NewSession(life.New(life.Config{Rows: 4, Columns: 4}), 1)
	p := life.Position{Row: 2, Col: 3}

	s.Click(p)
	if s.Engine().At(p) != life.Alive {
		t.Fatal("click should revive the cell")
	}
	s.Click(life.Position{Row: 4, Col: 0})
	s.Click(life.Position{Row: -1, Col: 2})
	if got := s.Engine().Population(); got != 1 {
		t.Fatalf("population = %d, expected 1", got)
	}
	s.Click(p)
	if s.Engine().At(p) != life.Dead {
		t.Fatal("second click should kill the cell")
	}
}

func TestClearAndReseed(t *testing.T) {
	s := blinkerSession()
	s.Advance(true)

	s.Apply(CmdClear)
	if s.Engine().Population() != 0 || s.Generation() != 0 {
		t.Fatalf("after clear: population=%d generation=%d, expected 0/0", s.Engine().Population(), s.Generation())
	}

	s.Apply(CmdReseed)
	first := slices.Clone(s.Engine().Cells())
	s.Advance(true)
	s.Apply(CmdReseed)
	if !slices.Equal(first, s.Engine().Cells()) {
		t.Fatal("reseed with the same seed should reproduce the grid")
	}
	want := life.NewRandom(life.DefaultConfig(), core.NewRNG(7))
	if !slices.Equal(want.Cells(), first) {
		t.Fatal("reseed should match NewRandom with the session seed")
	}
}

func TestRandomizeUsesClock(t *testing.T) {
	s := blinkerSession()
	s.now = func() time.Time { return time.Unix(0, 99) }
	s.Apply(CmdRandomize)
	want := life.NewRandom(life.DefaultConfig(), core.NewRNG(99))
	if !slices.Equal(want.Cells(), s.Engine().Cells()) {
		t.Fatal("randomize should seed from the clock")
	}
	s.Apply(CmdReseed)
	if !slices.Equal(want.Cells(), s.Engine().Cells()) {
		t.Fatal("reseed after randomize should reuse the clock seed")
	}
}

func TestApplyQuitAndGrid(t *testing.T) {
	s := blinkerSession()
	if !s.Apply(CmdQuit) {
		t.Fatal("CmdQuit should request quit")
	}
	s.Apply(CmdGrid)
	if !s.ShowGrid() {
		t.Fatal("CmdGrid should enable the overlay")
	}
	if s.Apply(CmdNone) {
		t.Fatal("CmdNone should not quit")
	}
}

func TestCommandForRune(t *testing.T) {
	tests := map[rune]Command{
		'q': CmdQuit, 'Q': CmdQuit, ' ': CmdPause, '\r': CmdResume,
		'n': CmdStep, 'c': CmdClear, 'r': CmdReseed, 's': CmdRandomize,
		'g': CmdGrid, 'x': CmdNone,
	}
	for r, want := range tests {
		if got := CommandForRune(r); got != want {
			t.Errorf("CommandForRune(%q) = %v, expected %v", r, got, want)
		}
	}
}

func TestParameters(t *testing.T) {
	s := blinkerSession()
	s.Advance(true)
	snap := s.Parameters()
	for key, want := range map[string]string{
		"rows": "32", "cols": "32", "population": "3", "generation": "1", "paused": "off",
	} {
		if got, ok := snap.Lookup(key); !ok || got != want {
			t.Errorf("%s = %q, expected %q", key, got, want)
		}
	}
}

func TestClearDropsPendingStep(t *testing.T) {
	s := blinkerSession()
	s.Apply(CmdPause)
	s.Apply(CmdStep)
	s.Apply(CmdClear)
	s.Engine().Toggle(life.Position{Row: 5, Col: 5})

	if s.Advance(false) {
		t.Fatal("single step requested before clear should not run afterwards")
	}
	if s.Generation() != 0 || s.Engine().Population() != 1 {
		t.Fatalf("generation=%d population=%d, expected 0/1", s.Generation(), s.Engine().Population())
	}
}
