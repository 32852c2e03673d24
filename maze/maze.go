/*
Package maze provides tools for creating and solving rectangular perfect mazes.

A Maze is a grid graph whose edges are carved passages between side-adjacent
cells. Generate grows a random spanning tree over the grid with the randomized
frontier (Prim) algorithm, and Solver walks the carved passages depth-first to
find the unique path between two cells.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"
)

// MaxCells caps width*height so the adjacency arena always fits in memory.
const MaxCells = 1 << 26

var (
	ErrInvalidDimension = errors.New("invalid maze dimensions")
	ErrOutOfBounds      = errors.New("cell is out of the maze")
	ErrNotAdjacent      = errors.New("cells are not adjacent")
)

// directions lists the grid-neighbor offsets in the order they are visited: up, down, left, right.
var directions = [4]Cell{{Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 1}}

// Option configures a Maze at construction.
type Option func(*Maze)

// WithSeed makes generation deterministic for the given seed.
func WithSeed(seed int64) Option {
	return func(m *Maze) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the random source used by generation.
func WithRand(r *rand.Rand) Option {
	return func(m *Maze) {
		if r != nil {
			m.rng = r
		}
	}
}

// Maze is a rectangular grid of cells and the passages carved between them.
type Maze struct {
	width  int      // Width of the maze (number of columns)
	height int      // Height of the maze (number of rows)
	cells  [][]Cell // Carved neighbors per cell, indexed by row*width+col, in insertion order
	edges  int      // Number of undirected passages
	rng    *rand.Rand
}

// New creates a maze of the given dimensions with every wall standing.
func New(width, height int, opts ...Option) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d height=%d", ErrInvalidDimension, width, height)
	}
	if width > MaxCells/height {
		return nil, fmt.Errorf("%w: width=%d height=%d exceeds %d cells", ErrInvalidDimension, width, height, MaxCells)
	}

	m := &Maze{
		width:  width,
		height: height,
		cells:  make([][]Cell, width*height),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Contains reports whether c lies inside the grid.
func (m *Maze) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < m.height && c.Col >= 0 && c.Col < m.width
}

// Cells returns every cell of the grid in row-major order.
func (m *Maze) Cells() []Cell {
	cells := make([]Cell, 0, m.width*m.height)
	for r := 0; r < m.height; r++ {
		for c := 0; c < m.width; c++ {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}
	return cells
}

// Passages returns the cells connected to c by a carved passage, in the order they were carved.
// The returned slice is a copy. It is nil when c is outside the grid.
func (m *Maze) Passages(c Cell) []Cell {
	if !m.Contains(c) {
		return nil
	}
	return slices.Clone(m.cells[m.index(c)])
}

// HasPassage reports whether a passage is carved between a and b.
func (m *Maze) HasPassage(a, b Cell) bool {
	if !m.Contains(a) || !m.Contains(b) {
		return false
	}
	return slices.Contains(m.cells[m.index(a)], b)
}

// PassageCount returns the number of undirected passages carved so far.
func (m *Maze) PassageCount() int { return m.edges }

// Connect carves a passage between two side-adjacent cells.
// Connecting cells that are already connected is a no-op.
func (m *Maze) Connect(a, b Cell) error {
	if !m.Contains(a) || !m.Contains(b) {
		return fmt.Errorf("%w: %s-%s", ErrOutOfBounds, a, b)
	}
	if !adjacent(a, b) {
		return fmt.Errorf("%w: %s-%s", ErrNotAdjacent, a, b)
	}
	m.connect(a, b)
	return nil
}

// Generate carves a perfect maze with the randomized frontier algorithm, growing from start.
// A nil start picks a cell uniformly at random.
//
// Generate must be called at most once per Maze. A second call carves a second spanning
// tree on top of the first, so the result is no longer a perfect maze.
func (m *Maze) Generate(start *Cell) error {
	var first Cell
	if start != nil {
		if !m.Contains(*start) {
			return fmt.Errorf("%w: start %s", ErrOutOfBounds, *start)
		}
		first = *start
	} else {
		first = Cell{Row: m.rng.Intn(m.height), Col: m.rng.Intn(m.width)}
	}

	inMaze := make([]bool, len(m.cells))
	inFrontier := make([]bool, len(m.cells))
	frontier := make([]Cell, 0, m.width+m.height)

	inMaze[m.index(first)] = true
	frontier = m.extendFrontier(first, inMaze, inFrontier, frontier)

	joined := make([]Cell, 0, len(directions))
	for len(frontier) > 0 {
		// Uniform pick, then swap-with-last and pop.
		i := m.rng.Intn(len(frontier))
		cell := frontier[i]
		last := len(frontier) - 1
		frontier[i] = frontier[last]
		frontier = frontier[:last]
		inFrontier[m.index(cell)] = false

		joined = joined[:0]
		for _, nb := range m.gridNeighbors(cell) {
			if inMaze[m.index(nb)] {
				joined = append(joined, nb)
			}
		}
		if len(joined) > 0 {
			m.connect(cell, joined[m.rng.Intn(len(joined))])
		}

		inMaze[m.index(cell)] = true
		frontier = m.extendFrontier(cell, inMaze, inFrontier, frontier)
	}
	return nil
}

// extendFrontier appends the neighbors of cell that are neither in the maze nor already in the frontier.
func (m *Maze) extendFrontier(cell Cell, inMaze, inFrontier []bool, frontier []Cell) []Cell {
	for _, nb := range m.gridNeighbors(cell) {
		idx := m.index(nb)
		if !inMaze[idx] && !inFrontier[idx] {
			inFrontier[idx] = true
			frontier = append(frontier, nb)
		}
	}
	return frontier
}

// gridNeighbors returns the in-bound side neighbors of pos: up, down, left, right. No wraparound.
func (m *Maze) gridNeighbors(pos Cell) []Cell {
	result := make([]Cell, 0, len(directions))
	for _, delta := range directions {
		nb := Cell{Row: pos.Row + delta.Row, Col: pos.Col + delta.Col}
		if m.Contains(nb) {
			result = append(result, nb)
		}
	}
	return result
}

// connect records the passage in both directions. Callers guarantee a and b are valid and distinct.
func (m *Maze) connect(a, b Cell) {
	ai, bi := m.index(a), m.index(b)
	if slices.Contains(m.cells[ai], b) {
		return
	}
	m.cells[ai] = append(m.cells[ai], b)
	m.cells[bi] = append(m.cells[bi], a)
	m.edges++
}

func (m *Maze) index(c Cell) int {
	return c.Row*m.width + c.Col
}
