package board

import "fmt"

// BuildGrid constructs a rowLength×colLength board with empty neighbor sets.
// A colLength of 0 means "omitted" and yields a square board.
// Returns ErrInvalidDimensions if rowLength ≤ 0 or colLength < 0.
// Complexity: O(R×C) time and memory.
func BuildGrid(rowLength, colLength int) (*Board, error) {
	if colLength == 0 {
		colLength = rowLength
	}
	if rowLength <= 0 || colLength <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, rowLength, colLength)
	}
	b := &Board{
		rows:  rowLength,
		cols:  colLength,
		cells: make([]Cell, rowLength*colLength),
	}
	for r := 0; r < rowLength; r++ {
		for c := 0; c < colLength; c++ {
			cell := &b.cells[b.index(r, c)]
			cell.Row, cell.Col = r, c
		}
	}

	return b, nil
}

// PopulateKnightAdjacency fills every cell's neighbor set with the in-bounds
// cells at a knight offset, in KnightOffsets() order. Existing neighbor sets
// are replaced, so calling it twice leaves the board unchanged.
// Complexity: O(R×C×8).
func PopulateKnightAdjacency(b *Board) {
	for i := range b.cells {
		cell := &b.cells[i]
		nbrs := make([]*Cell, 0, len(knightOffsets))
		for _, d := range knightOffsets {
			r, c := cell.Row+d[0], cell.Col+d[1]
			if !b.InBounds(r, c) {
				continue
			}
			nbrs = append(nbrs, &b.cells[b.index(r, c)])
		}
		cell.neighbors = nbrs
	}
}

// BuildKnightGraph builds a board and populates its knight adjacency.
func BuildKnightGraph(rowLength, colLength int) (*Board, error) {
	b, err := BuildGrid(rowLength, colLength)
	if err != nil {
		return nil, err
	}
	PopulateKnightAdjacency(b)

	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Len returns the number of cells, Rows()×Cols().
func (b *Board) Len() int { return len(b.cells) }

// InBounds reports whether (row,col) lies within the board.
// Complexity: O(1).
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the cell at (row,col), or nil if it is out of bounds.
func (b *Board) At(row, col int) *Cell {
	if !b.InBounds(row, col) {
		return nil
	}
	return &b.cells[b.index(row, col)]
}

// Cell returns the cell at c, or ErrOutOfBounds.
func (b *Board) Cell(c Coordinate) (*Cell, error) {
	cell := b.At(c.Row(), c.Col())
	if cell == nil {
		return nil, fmt.Errorf("%w: %s on %d×%d board", ErrOutOfBounds, c, b.rows, b.cols)
	}
	return cell, nil
}

// Cells returns every cell in row-major order.
func (b *Board) Cells() []*Cell {
	out := make([]*Cell, len(b.cells))
	for i := range b.cells {
		out[i] = &b.cells[i]
	}
	return out
}

// EdgeCount returns the number of undirected knight edges on the board.
func (b *Board) EdgeCount() int {
	total := 0
	for i := range b.cells {
		total += len(b.cells[i].neighbors)
	}
	return total / 2
}

// Index maps a cell to its row-major index.
// Complexity: O(1).
func (b *Board) Index(c *Cell) int {
	return b.index(c.Row, c.Col)
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (b *Board) Coordinate(idx int) Coordinate {
	return Coordinate{idx / b.cols, idx % b.cols}
}

// index maps (row,col) to row*Cols + col.
func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

// ParseCoordinatePair validates the [[srcRow,srcCol],[dstRow,dstCol]] input
// shape. It checks shape only; bounds are checked against a Board by Cell.
func ParseCoordinatePair(pair [][]int) (src, dst Coordinate, err error) {
	if len(pair) != 2 {
		return src, dst, fmt.Errorf("%w: got %d elements", ErrMalformedPair, len(pair))
	}
	for i, p := range pair {
		if len(p) != 2 {
			return src, dst, fmt.Errorf("%w: element %d has %d values", ErrMalformedPair, i, len(p))
		}
	}

	return Coordinate{pair[0][0], pair[0][1]}, Coordinate{pair[1][0], pair[1][1]}, nil
}
