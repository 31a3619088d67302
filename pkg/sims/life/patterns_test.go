package life

import (
	"slices"
	"testing"
)

func TestBuiltinPatterns(t *testing.T) {
	for _, name := range []string{"blinker", "block", "demo", "glider", "toad"} {
		cells, ok := Pattern(name)
		if !ok || len(cells) == 0 {
			t.Errorf("pattern %q missing", name)
		}
	}
	names := Patterns()
	if !slices.IsSorted(names) {
		t.Fatalf("Patterns() not sorted: %v", names)
	}
}

func TestPatternReturnsCopy(t *testing.T) {
	cells, _ := Pattern("blinker")
	cells[0] = Position{9, 9}
	again, _ := Pattern("blinker")
	if again[0] == (Position{9, 9}) {
		t.Fatal("Pattern exposed registry storage")
	}
}

func TestRegisterPatternIgnoresEmpty(t *testing.T) {
	before := len(Patterns())
	RegisterPattern("", []Position{{0, 0}})
	RegisterPattern("nothing", nil)
	if got := len(Patterns()); got != before {
		t.Fatalf("pattern count = %d, expected %d", got, before)
	}
}

func TestDemoPatternFitsDefaultGrid(t *testing.T) {
	cells, _ := Pattern("demo")
	l := FromCells(DefaultConfig(), cells)
	if got := l.Population(); got != len(cells) {
		t.Fatalf("population = %d, expected %d", got, len(cells))
	}
}

func TestToadOscillates(t *testing.T) {
	cells, _ := Pattern("toad")
	l := FromCells(Config{Rows: 6, Columns: 6}, Translate(cells, 1, 0))
	start := l.Snapshot()
	l.Step()
	if slices.Equal(start.Cells(), l.Cells()) {
		t.Fatal("toad should change after one step")
	}
	l.Step()
	if !slices.Equal(start.Cells(), l.Cells()) {
		t.Fatalf("toad should return after two steps:\n%s", l.Snapshot())
	}
}
