// Package render draws mazes as fixed-width text.
//
// Cell (r,c) sits at grid position (2r+1, 2c+1) and the wall between two side-adjacent
// cells (r,c) and (nr,nc) sits at (r+nr+1, c+nc+1), so a w×h maze renders as a
// (2h+1)×(2w+1) character grid.
package render

import (
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
)

const (
	Wall  byte = '#'
	Open  byte = ' '
	Step  byte = '*'
	Start byte = 'S'
	Goal  byte = 'E'
)

// Grid is the part of a maze the renderer reads.
type Grid interface {
	Width() int
	Height() int
	Cells() []maze.Cell
	Passages(maze.Cell) []maze.Cell
}

// Build returns the character grid for g. Every cell is open, every carved passage is open,
// and the outer wall is opened at column 0 on the start row and at the last column on the goal row.
// Endpoints outside g are ignored.
func Build(g Grid, start, goal *maze.Cell) [][]byte {
	rows := g.Height()*2 + 1
	columns := g.Width()*2 + 1
	grid := make([][]byte, rows)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(string(Wall), columns))
	}

	for _, cell := range g.Cells() {
		grid[2*cell.Row+1][2*cell.Col+1] = Open
		for _, nb := range g.Passages(cell) {
			grid[cell.Row+nb.Row+1][cell.Col+nb.Col+1] = Open
		}
	}

	if within(grid, start) {
		grid[2*start.Row+1][0] = Open
	}
	if within(grid, goal) {
		grid[2*goal.Row+1][columns-1] = Open
	}
	return grid
}

// OverlayPath returns a copy of grid with the interior cells of path marked.
// The first and last cells are left for the start and goal markers.
func OverlayPath(grid [][]byte, path []maze.Cell) [][]byte {
	withPath := clone(grid)
	for i := 1; i < len(path)-1; i++ {
		if !within(withPath, &path[i]) {
			continue
		}
		r, c := 2*path[i].Row+1, 2*path[i].Col+1
		if withPath[r][c] == Open {
			withPath[r][c] = Step
		}
	}
	return withPath
}

// Plain joins the rows of grid, one line per row.
func Plain(grid [][]byte) string {
	var sb strings.Builder
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Pretty overlays path, marks start and goal, and draws walls with box characters:
// '+' at corners, '-' on horizontal runs and '|' on vertical runs.
// grid itself is left untouched. Endpoints and path cells outside grid are ignored.
func Pretty(grid [][]byte, start, goal *maze.Cell, path []maze.Cell) string {
	tmp := OverlayPath(grid, path)
	if within(tmp, start) {
		tmp[2*start.Row+1][2*start.Col+1] = Start
	}
	if within(tmp, goal) {
		tmp[2*goal.Row+1][2*goal.Col+1] = Goal
	}

	var sb strings.Builder
	for r, row := range tmp {
		for c, ch := range row {
			if ch != Wall {
				sb.WriteByte(ch)
				continue
			}
			switch {
			case r%2 == 0 && c%2 == 0:
				sb.WriteByte('+')
			case r%2 == 0:
				sb.WriteByte('-')
			case c%2 == 0:
				sb.WriteByte('|')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Lines splits rendered text into its rows.
func Lines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// within reports whether c is a cell position of grid.
func within(grid [][]byte, c *maze.Cell) bool {
	if c == nil || c.Row < 0 || c.Col < 0 {
		return false
	}
	r, col := 2*c.Row+1, 2*c.Col+1
	return r < len(grid)-1 && col < len(grid[r])-1
}

func clone(grid [][]byte) [][]byte {
	out := make([][]byte, len(grid))
	for i, row := range grid {
		out[i] = append([]byte(nil), row...)
	}
	return out
}
