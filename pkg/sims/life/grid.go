package life

import "strings"

// Grid is a read-only copy of an engine's cells in row-major order.
type Grid struct {
	size  Size
	cells []CellState
}

// Size returns the grid dimensions.
func (g Grid) Size() Size { return g.size }

// At returns the state at p, or Dead when p is out of bounds.
func (g Grid) At(p Position) CellState {
	if !g.size.Contains(p) {
		return Dead
	}
	return g.cells[p.Row*g.size.Columns+p.Col]
}

// Cells returns the backing slice. Callers must not modify it.
func (g Grid) Cells() []CellState { return g.cells }

// Alive lists the live positions in row-major order.
func (g Grid) Alive() []Position {
	var out []Position
	for i, c := range g.cells {
		if c == Alive {
			out = append(out, Position{Row: i / g.size.Columns, Col: i % g.size.Columns})
		}
	}
	return out
}

// String renders the grid with '#' for live cells and '.' for dead ones, one
// line per row.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(g.size.Rows * (g.size.Columns + 1))
	for r := 0; r < g.size.Rows; r++ {
		for c := 0; c < g.size.Columns; c++ {
			if g.cells[r*g.size.Columns+c] == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
