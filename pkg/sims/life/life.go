// Package life implements Conway's Game of Life on a bounded grid.
//
// A Life value owns two equally sized buffers. Step computes the next
// generation from the current buffer into the spare one and then swaps them,
// so no cell ever observes a neighbour's next-generation value. Edges do not
// wrap: neighbours outside the grid do not exist.
//
// The engine is not safe for concurrent use. Drivers call it from a single
// loop and read the cells between calls.
package life

import (
	"slices"

	"conway-ca/pkg/core"
)

// neighborOffsets lists the Moore neighbourhood as (row, col) deltas.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Life is the Game of Life engine.
type Life struct {
	rows, cols int
	workers    int
	cur        []CellState
	nxt        []CellState
}

// New returns an engine with every cell dead. It panics if cfg has
// non-positive dimensions.
func New(cfg Config) *Life {
	if err := cfg.Validate(); err != nil {
		panic("life: " + err.Error())
	}
	cells := make([]CellState, cfg.Rows*cfg.Columns)
	return &Life{
		rows:    cfg.Rows,
		cols:    cfg.Columns,
		workers: cfg.Workers,
		cur:     cells,
		nxt:     make([]CellState, len(cells)),
	}
}

// FromCells returns an engine with the given positions alive. Out-of-bounds
// positions are ignored and duplicates are harmless.
func FromCells(cfg Config, cells []Position) *Life {
	l := New(cfg)
	for _, p := range cells {
		if l.inBounds(p.Row, p.Col) {
			l.cur[p.Row*l.cols+p.Col] = Alive
		}
	}
	return l
}

// NewRandom returns an engine seeded from rng: Rows*Columns/2 positions are
// drawn uniformly with replacement and each one is made alive, so the live
// fraction is somewhat below one half. rng must not be nil.
func NewRandom(cfg Config, rng core.Rand) *Life {
	l := New(cfg)
	l.seed(rng)
	return l
}

func (l *Life) seed(rng core.Rand) {
	draws := l.Size().Cells() / 2
	for i := 0; i < draws; i++ {
		r := rng.IntN(l.rows)
		c := rng.IntN(l.cols)
		l.cur[r*l.cols+c] = Alive
	}
}

// Reset clears the grid and reseeds it randomly from a deterministic RNG for
// seed.
func (l *Life) Reset(seed int64) {
	clear(l.cur)
	l.seed(core.NewRNG(seed))
}

// Size returns the grid dimensions.
func (l *Life) Size() Size { return Size{Rows: l.rows, Columns: l.cols} }

// Cells exposes the current generation in row-major order. The slice is
// replaced by the next Step and must not be modified.
func (l *Life) Cells() []CellState { return l.cur }

// Snapshot returns an independent copy of the current generation.
func (l *Life) Snapshot() Grid {
	return Grid{size: l.Size(), cells: slices.Clone(l.cur)}
}

// At returns the state at p, or Dead when p is out of bounds.
func (l *Life) At(p Position) CellState {
	if !l.inBounds(p.Row, p.Col) {
		return Dead
	}
	return l.cur[p.Row*l.cols+p.Col]
}

// Population returns the number of live cells.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.cur {
		if c == Alive {
			n++
		}
	}
	return n
}

// CountNeighbors returns the number of live cells adjacent to p. Neighbours
// outside the grid are not counted; p itself may be out of bounds.
func (l *Life) CountNeighbors(p Position) int {
	return l.countNeighbors(p.Row, p.Col)
}

func (l *Life) countNeighbors(row, col int) int {
	n := 0
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if l.inBounds(r, c) && l.cur[r*l.cols+c] == Alive {
			n++
		}
	}
	return n
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	if l.workers > 1 && l.rows > 1 {
		l.stepBands(l.workers)
	} else {
		l.stepRows(0, l.rows)
	}
	l.cur, l.nxt = l.nxt, l.cur
}

// stepRows writes rows [from, to) of the next generation. It reads only cur.
func (l *Life) stepRows(from, to int) {
	for r := from; r < to; r++ {
		for c := 0; c < l.cols; c++ {
			idx := r*l.cols + c
			l.nxt[idx] = Rule(l.cur[idx], l.countNeighbors(r, c))
		}
	}
}

// Toggle flips the state at p. Out-of-bounds positions are ignored.
func (l *Life) Toggle(p Position) {
	if !l.inBounds(p.Row, p.Col) {
		return
	}
	idx := p.Row*l.cols + p.Col
	if l.cur[idx] == Alive {
		l.cur[idx] = Dead
	} else {
		l.cur[idx] = Alive
	}
}

// Clear kills every cell.
func (l *Life) Clear() {
	clear(l.cur)
}

func (l *Life) inBounds(row, col int) bool {
	return row >= 0 && row < l.rows && col >= 0 && col < l.cols
}
