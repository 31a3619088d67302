package life

// CellState is the state of a single cell. The zero value is Dead.
type CellState uint8

const (
	// Dead marks an empty cell.
	Dead CellState = iota
	// Alive marks a populated cell.
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Position identifies a cell by row and column. Positions are not validated
// on construction; every operation that accepts one checks bounds itself.
type Position struct {
	Row int
	Col int
}

// Size describes the dimensions of a grid.
type Size struct {
	Rows    int
	Columns int
}

// Contains reports whether p lies inside the grid.
func (s Size) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < s.Rows && p.Col >= 0 && p.Col < s.Columns
}

// Cells returns the total number of cells.
func (s Size) Cells() int { return s.Rows * s.Columns }

// Rule is the Conway transition: a live cell survives with two or three live
// neighbours, a dead cell becomes alive with exactly three.
func Rule(s CellState, neighbors int) CellState {
	if neighbors == 3 || (s == Alive && neighbors == 2) {
		return Alive
	}
	return Dead
}
