package life

import (
	"slices"
	"sort"
)

var patterns = map[string][]Position{}

// RegisterPattern adds a named seed pattern. Empty names and empty patterns
// are ignored; registering an existing name replaces it.
func RegisterPattern(name string, cells []Position) {
	if name == "" || len(cells) == 0 {
		return
	}
	patterns[name] = slices.Clone(cells)
}

// Pattern returns a copy of the named pattern.
func Pattern(name string) ([]Position, bool) {
	cells, ok := patterns[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(cells), true
}

// Patterns lists registered pattern names in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Translate returns cells shifted by (dr, dc).
func Translate(cells []Position, dr, dc int) []Position {
	out := make([]Position, len(cells))
	for i, p := range cells {
		out[i] = Position{Row: p.Row + dr, Col: p.Col + dc}
	}
	return out
}

func init() {
	RegisterPattern("blinker", []Position{{0, 1}, {1, 1}, {2, 1}})
	RegisterPattern("block", []Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	RegisterPattern("glider", []Position{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}})
	RegisterPattern("toad", []Position{{1, 2}, {1, 3}, {1, 4}, {2, 1}, {2, 2}, {2, 3}})
	RegisterPattern("demo", []Position{
		{1, 3}, {1, 5}, {2, 1}, {2, 7}, {3, 3}, {3, 6},
		{4, 2}, {4, 4}, {4, 8}, {5, 1}, {5, 5}, {5, 7},
		{6, 3}, {6, 4}, {6, 8}, {7, 2}, {7, 5},
	})
}
