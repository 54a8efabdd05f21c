package board

import (
	"errors"
	"strconv"
)

// Sentinel errors for board operations.
var (
	// ErrInvalidDimensions indicates a non-positive row length or a negative column length.
	ErrInvalidDimensions = errors.New("board: dimensions must be positive")
	// ErrOutOfBounds indicates a coordinate outside the board.
	ErrOutOfBounds = errors.New("board: coordinate out of bounds")
	// ErrMalformedPair indicates a coordinate pair that is not [[row,col],[row,col]].
	ErrMalformedPair = errors.New("board: need a coordinate pair like [[0,0],[1,2]]")
)

// Coordinate is a (row, col) pair, both zero-based.
type Coordinate [2]int

// Row returns the row index.
func (c Coordinate) Row() int { return c[0] }

// Col returns the column index.
func (c Coordinate) Col() int { return c[1] }

// String renders the coordinate as a JSON-style array, e.g. "[3,3]".
func (c Coordinate) String() string {
	return "[" + strconv.Itoa(c[0]) + "," + strconv.Itoa(c[1]) + "]"
}

// Cell is one square of the board. Its neighbor set is filled by
// PopulateKnightAdjacency and must not be mutated afterwards.
type Cell struct {
	Row, Col  int
	neighbors []*Cell
}

// Coordinate returns the cell's (row, col) pair.
func (c *Cell) Coordinate() Coordinate {
	return Coordinate{c.Row, c.Col}
}

// Neighbors returns the cells one knight move away, in KnightOffsets() order.
// The returned slice is shared; callers must treat it as read-only.
func (c *Cell) Neighbors() []*Cell {
	return c.neighbors
}

// Degree returns the number of neighbors.
func (c *Cell) Degree() int {
	return len(c.neighbors)
}

// HasNeighbor reports whether o is one knight move away from c.
func (c *Cell) HasNeighbor(o *Cell) bool {
	for _, n := range c.neighbors {
		if n == o {
			return true
		}
	}
	return false
}

func (c *Cell) String() string {
	return c.Coordinate().String()
}

// Board is a Rows×Cols grid of Cells. It is immutable once
// PopulateKnightAdjacency has returned and may then be shared between
// goroutines for read-only searches.
type Board struct {
	rows, cols int
	cells      []Cell
}

// knightOffsets is the canonical enumeration order of the eight knight jumps.
var knightOffsets = [8][2]int{
	{-2, 1}, {-2, -1}, // top
	{2, 1}, {2, -1}, // bottom
	{1, -2}, {-1, -2}, // left
	{1, 2}, {-1, 2}, // right
}

// KnightOffsets returns the eight (Δrow, Δcol) knight jumps in the order used
// to populate neighbor sets.
func KnightOffsets() [8][2]int {
	return knightOffsets
}
