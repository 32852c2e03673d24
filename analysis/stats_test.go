package analysis

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	t.Run("Corridor", func(t *testing.T) {
		m, err := maze.New(4, 1)
		require.NoError(t, err)
		for c := 1; c < 4; c++ {
			require.NoError(t, m.Connect(maze.Cell{Row: 0, Col: c - 1}, maze.Cell{Row: 0, Col: c}))
		}

		stats, err := Analyze(m, maze.Cell{Row: 0, Col: 0}, maze.Cell{Row: 0, Col: 3})
		require.NoError(t, err)
		want := Stats{Cells: 4, Passages: 3, Components: 1, Perfect: true, DeadEnds: 2, ShortestPath: 3, Diameter: 3}
		if diff := cmp.Diff(want, stats); diff != "" {
			t.Errorf("Analyze mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Disconnected plus", func(t *testing.T) {
		m, err := maze.New(3, 3)
		require.NoError(t, err)
		center := maze.Cell{Row: 1, Col: 1}
		for _, nb := range []maze.Cell{{Row: 0, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}} {
			require.NoError(t, m.Connect(center, nb))
		}

		stats, err := Analyze(m, maze.Cell{Row: 0, Col: 1}, maze.Cell{Row: 2, Col: 1})
		require.NoError(t, err)
		assert.Equal(t, 5, stats.Components)
		assert.False(t, stats.Perfect)
		assert.Equal(t, 4, stats.DeadEnds)
		assert.Equal(t, 1, stats.Junctions)
		assert.Equal(t, 2, stats.ShortestPath)
		assert.Zero(t, stats.Diameter)

		stats, err = Analyze(m, maze.Cell{Row: 0, Col: 0}, center)
		require.NoError(t, err)
		assert.Equal(t, -1, stats.ShortestPath)
	})

	t.Run("Generated maze is perfect", func(t *testing.T) {
		m, err := maze.New(16, 12, maze.WithSeed(21))
		require.NoError(t, err)
		require.NoError(t, m.Generate(nil))

		start, goal := maze.Cell{Row: 0, Col: 0}, maze.Cell{Row: 11, Col: 15}
		stats, err := Analyze(m, start, goal)
		require.NoError(t, err)
		assert.True(t, stats.Perfect)
		assert.Equal(t, 1, stats.Components)
		assert.Equal(t, 16*12-1, stats.Passages)
		assert.GreaterOrEqual(t, stats.Diameter, stats.ShortestPath)

		// The maze is a tree, so the solver's path is the only path.
		path, err := maze.NewSolver(m).Solve(start, goal)
		require.NoError(t, err)
		assert.Equal(t, len(path)-1, stats.ShortestPath)
	})

	t.Run("Single cell", func(t *testing.T) {
		m, err := maze.New(1, 1)
		require.NoError(t, err)
		stats, err := Analyze(m, maze.Cell{}, maze.Cell{})
		require.NoError(t, err)
		assert.True(t, stats.Perfect)
		assert.Zero(t, stats.ShortestPath)
		assert.Zero(t, stats.Diameter)
	})

	t.Run("Endpoints out of bounds", func(t *testing.T) {
		m, err := maze.New(2, 2)
		require.NoError(t, err)
		_, err = Analyze(m, maze.Cell{Row: 2, Col: 0}, maze.Cell{})
		assert.ErrorIs(t, err, maze.ErrOutOfBounds)
	})
}
