// Package analysis reports structural statistics about a carved maze.
package analysis

import (
	"fmt"
	"math"

	"github.com/beka-birhanu/vinom-maze/maze"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Stats summarises the passage graph of a maze.
type Stats struct {
	Cells        int  `json:"cells"`
	Passages     int  `json:"passages"`
	Components   int  `json:"components"`
	Perfect      bool `json:"perfect"`       // Connected and acyclic.
	DeadEnds     int  `json:"dead_ends"`     // Cells with exactly one passage.
	Junctions    int  `json:"junctions"`     // Cells with three or more passages.
	ShortestPath int  `json:"shortest_path"` // Hops from start to goal, -1 if unreachable.
	Diameter     int  `json:"diameter"`      // Longest shortest path in hops; only computed for perfect mazes.
}

// Analyze computes Stats for m with start and goal as the measured endpoints.
func Analyze(m *maze.Maze, start, goal maze.Cell) (Stats, error) {
	if !m.Contains(start) || !m.Contains(goal) {
		return Stats{}, fmt.Errorf("%w: %s-%s", maze.ErrOutOfBounds, start, goal)
	}

	g := toGraph(m)
	stats := Stats{
		Cells:      m.Width() * m.Height(),
		Passages:   m.PassageCount(),
		Components: len(topo.ConnectedComponents(g)),
	}
	stats.Perfect = stats.Components == 1 && stats.Passages == stats.Cells-1

	for _, c := range m.Cells() {
		switch degree := len(m.Passages(c)); {
		case degree == 1:
			stats.DeadEnds++
		case degree >= 3:
			stats.Junctions++
		}
	}

	stats.ShortestPath = hops(path.DijkstraFrom(node(m, start), g).WeightTo(id(m, goal)))

	if stats.Perfect {
		// On a tree the farthest node from any node is one end of a longest path.
		far, _ := farthest(g, node(m, start))
		_, stats.Diameter = farthest(g, far)
	}
	return stats, nil
}

func toGraph(m *maze.Maze) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for _, c := range m.Cells() {
		g.AddNode(node(m, c))
	}
	for _, c := range m.Cells() {
		for _, nb := range m.Passages(c) {
			if id(m, c) < id(m, nb) {
				g.SetEdge(g.NewEdge(node(m, c), node(m, nb)))
			}
		}
	}
	return g
}

// farthest returns the node with the greatest finite hop count from u.
func farthest(g *simple.UndirectedGraph, u graph.Node) (graph.Node, int) {
	shortest := path.DijkstraFrom(u, g)
	best, bestHops := u, 0
	nodes := g.Nodes()
	for nodes.Next() {
		n := nodes.Node()
		if h := hops(shortest.WeightTo(n.ID())); h > bestHops {
			best, bestHops = n, h
		}
	}
	return best, bestHops
}

func hops(weight float64) int {
	if math.IsInf(weight, 1) {
		return -1
	}
	return int(weight)
}

func id(m *maze.Maze, c maze.Cell) int64 {
	return int64(c.Row*m.Width() + c.Col)
}

func node(m *maze.Maze, c maze.Cell) graph.Node {
	return simple.Node(id(m, c))
}
