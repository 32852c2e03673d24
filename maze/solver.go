package maze

import (
	"fmt"
	"slices"
)

// Graph is the read-only view of carved passages that a Solver walks.
type Graph interface {
	// Contains reports whether the cell belongs to the graph.
	Contains(Cell) bool
	// Passages returns the cells reachable from the cell in one step.
	Passages(Cell) []Cell
}

var _ Graph = &Maze{}

// Solver finds paths through a Graph. It never mutates the graph,
// so one Solver may serve concurrent Solve calls once generation is done.
type Solver struct {
	graph Graph
}

// NewSolver returns a Solver over g.
func NewSolver(g Graph) *Solver {
	return &Solver{graph: g}
}

// Solve returns the cells from start to goal, both inclusive, following carved passages.
// The search is depth-first, so the path is not guaranteed to be the shortest one on graphs
// with cycles. An empty slice means goal is not reachable from start.
func (s *Solver) Solve(start, goal Cell) ([]Cell, error) {
	if !s.graph.Contains(start) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if !s.graph.Contains(goal) {
		return nil, fmt.Errorf("%w: goal %s", ErrOutOfBounds, goal)
	}

	visited := map[Cell]struct{}{start: {}}
	parent := make(map[Cell]Cell)
	stack := []Cell{start}

	found := false
	for len(stack) > 0 {
		current := pop(&stack)
		if current == goal {
			found = true
			break
		}

		for _, nb := range s.graph.Passages(current) {
			if _, seen := visited[nb]; !seen {
				visited[nb] = struct{}{}
				parent[nb] = current
				stack = append(stack, nb)
			}
		}
	}

	if !found {
		return []Cell{}, nil
	}

	path := []Cell{goal}
	for step := goal; step != start; {
		step = parent[step]
		path = append(path, step)
	}
	slices.Reverse(path)
	return path, nil
}

// pop removes and returns the last element of the stack.
func pop(s *[]Cell) Cell {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
