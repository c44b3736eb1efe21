package grid

/*

Latin square grid representation

*/

// MaxSize is the largest side length a grid can have.  The save
// format carries single-digit cell values, so the bound matches
// the original game files.
const MaxSize = 9

// A cell holds an assigned value (0 when empty) and whether the
// value is a given from the loaded puzzle.  Givens can never be
// cleared or overwritten.  The external encoding of cells is a
// single signed integer (negative means given); the split
// representation here keeps the two meanings apart without
// changing anything observable.
type cell struct {
	value int
	fixed bool
}

// A Grid is a square matrix of cells.  The side length is set at
// construction and never changes.  Rows and columns are numbered
// from 1, matching the player-facing command surface.
type Grid struct {
	size  int
	cells []cell
}

// New creates a grid of the given side length from a row-major
// list of signed cell values: 0 for an empty cell, a negative
// value for a given.  The values are copied as found, the way the
// original file reader copies them; constraint enforcement is the
// rule engine's job, not the constructor's.
func New(size int, values []int) (*Grid, error) {
	if size < 1 || size > MaxSize {
		return nil, Error{
			Condition: InvalidSizeCondition,
			Values:    ErrorData{size, MaxSize},
		}
	}
	if len(values) != size*size {
		return nil, Error{
			Condition: InvalidDataCondition,
			Values:    ErrorData{len(values), size * size},
		}
	}
	g := &Grid{size: size, cells: make([]cell, size*size)}
	for i, v := range values {
		if v < 0 {
			g.cells[i] = cell{value: -v, fixed: true}
		} else {
			g.cells[i] = cell{value: v}
		}
	}
	return g, nil
}

// index maps 1-based row and column numbers to the cell slice.
// Callers must pass valid indices; the rule engine range-checks
// every move before touching the store.
func (g *Grid) index(row, col int) int {
	return (row-1)*g.size + (col - 1)
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// Get returns the signed value of a cell: 0 when empty, positive
// for a player-placed value, negative for a given.
func (g *Grid) Get(row, col int) int {
	c := g.cells[g.index(row, col)]
	if c.fixed {
		return -c.value
	}
	return c.value
}

// Set overwrites a cell with a signed value, without any
// constraint checking.  A negative value makes the cell a given.
func (g *Grid) Set(row, col, value int) {
	if value < 0 {
		g.cells[g.index(row, col)] = cell{value: -value, fixed: true}
	} else {
		g.cells[g.index(row, col)] = cell{value: value}
	}
}

// IsFixed reports whether a cell holds a given.
func (g *Grid) IsFixed(row, col int) bool {
	return g.cells[g.index(row, col)].fixed
}

// Complete reports whether every cell holds a value.
func (g *Grid) Complete() bool {
	for _, c := range g.cells {
		if c.value == 0 {
			return false
		}
	}
	return true
}

// Values returns a row-major snapshot of the grid in the signed
// encoding.  The snapshot shares no storage with the grid.
func (g *Grid) Values() []int {
	out := make([]int, len(g.cells))
	for i, c := range g.cells {
		if c.fixed {
			out[i] = -c.value
		} else {
			out[i] = c.value
		}
	}
	return out
}
