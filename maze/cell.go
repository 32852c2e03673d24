package maze

import "fmt"

// Cell is a grid coordinate. Row and Col are 0-indexed.
// Two cells are equal when both coordinates match, so Cell is usable as a map key.
type Cell struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// String returns the cell formatted as (row,col).
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// adjacent reports whether a and b share a side.
func adjacent(a, b Cell) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return dr*dr+dc*dc == 1
}
