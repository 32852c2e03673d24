package maze

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachable counts the cells reachable from start through carved passages.
func reachable(m *Maze, start Cell) int {
	seen := map[Cell]struct{}{start: {}}
	queue := []Cell{start}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		for _, nb := range m.Passages(cell) {
			if _, ok := seen[nb]; !ok {
				seen[nb] = struct{}{}
				queue = append(queue, nb)
			}
		}
	}
	return len(seen)
}

func generated(t *testing.T, width, height int, seed int64, start *Cell) *Maze {
	t.Helper()
	m, err := New(width, height, WithSeed(seed))
	require.NoError(t, err)
	require.NoError(t, m.Generate(start))
	return m
}

func TestNew(t *testing.T) {
	t.Run("Rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, -1}, {0, 0}, {-3, 2}} {
			m, err := New(dims[0], dims[1])
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrInvalidDimension, "dims %v", dims)
		}
	})

	t.Run("Rejects grids too large to allocate", func(t *testing.T) {
		for _, dims := range [][2]int{{1 << 32, 1 << 32}, {MaxCells, 2}, {1 << 13, 1<<13 + 1}} {
			m, err := New(dims[0], dims[1])
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrInvalidDimension, "dims %v", dims)
		}
	})

	t.Run("Every cell starts isolated", func(t *testing.T) {
		m, err := New(4, 3)
		require.NoError(t, err)
		assert.Equal(t, 4, m.Width())
		assert.Equal(t, 3, m.Height())
		assert.Len(t, m.Cells(), 12)
		for _, c := range m.Cells() {
			assert.Empty(t, m.Passages(c))
		}
		assert.Zero(t, m.PassageCount())
	})

	t.Run("Cells are row-major", func(t *testing.T) {
		m, err := New(2, 2)
		require.NoError(t, err)
		want := []Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
		if diff := cmp.Diff(want, m.Cells()); diff != "" {
			t.Errorf("Cells() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestGenerate(t *testing.T) {
	t.Run("Builds a spanning tree", func(t *testing.T) {
		sizes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {2, 2}, {5, 3}, {10, 10}, {31, 17}}
		for seed := int64(0); seed < 5; seed++ {
			for _, size := range sizes {
				w, h := size[0], size[1]
				m := generated(t, w, h, seed, nil)
				assert.Equal(t, w*h-1, m.PassageCount(), "size %dx%d seed %d", w, h, seed)
				assert.Equal(t, w*h, reachable(m, Cell{Row: h - 1, Col: w - 1}), "size %dx%d seed %d", w, h, seed)
			}
		}
	})

	t.Run("Passages are symmetric and between grid neighbors", func(t *testing.T) {
		m := generated(t, 12, 9, 42, &Cell{Row: 4, Col: 4})
		total := 0
		for _, c := range m.Cells() {
			for _, nb := range m.Passages(c) {
				assert.True(t, adjacent(c, nb), "%s-%s", c, nb)
				assert.True(t, m.HasPassage(nb, c), "%s-%s", nb, c)
				total++
			}
		}
		assert.Equal(t, 2*m.PassageCount(), total)
	})

	t.Run("Same seed gives the same maze", func(t *testing.T) {
		a := generated(t, 15, 8, 7, nil)
		b := generated(t, 15, 8, 7, nil)
		for _, c := range a.Cells() {
			assert.Equal(t, a.Passages(c), b.Passages(c), "cell %s", c)
		}
	})

	t.Run("Start outside the grid", func(t *testing.T) {
		m, err := New(3, 3, WithSeed(1))
		require.NoError(t, err)
		err = m.Generate(&Cell{Row: 3, Col: 0})
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Zero(t, m.PassageCount())
	})

	t.Run("Two by two from the corner", func(t *testing.T) {
		m := generated(t, 2, 2, 2024, &Cell{Row: 0, Col: 0})
		assert.Equal(t, 3, m.PassageCount())
		assert.Equal(t, 4, reachable(m, Cell{Row: 0, Col: 0}))

		path, err := NewSolver(m).Solve(Cell{Row: 0, Col: 0}, Cell{Row: 1, Col: 1})
		require.NoError(t, err)
		require.NotEmpty(t, path)
		assert.Equal(t, Cell{Row: 0, Col: 0}, path[0])
		assert.Equal(t, Cell{Row: 1, Col: 1}, path[len(path)-1])
		for i := 1; i < len(path); i++ {
			assert.True(t, m.HasPassage(path[i-1], path[i]), "%s-%s", path[i-1], path[i])
		}
	})

	t.Run("Single cell has no passages", func(t *testing.T) {
		m := generated(t, 1, 1, 3, nil)
		assert.Zero(t, m.PassageCount())
		assert.Empty(t, m.Passages(Cell{}))
	})
}

func TestConnect(t *testing.T) {
	m, err := New(3, 3)
	require.NoError(t, err)

	t.Run("Is symmetric and idempotent", func(t *testing.T) {
		a, b := Cell{Row: 1, Col: 1}, Cell{Row: 1, Col: 2}
		require.NoError(t, m.Connect(a, b))
		require.NoError(t, m.Connect(b, a))
		require.NoError(t, m.Connect(a, b))
		assert.Equal(t, []Cell{b}, m.Passages(a))
		assert.Equal(t, []Cell{a}, m.Passages(b))
		assert.Equal(t, 1, m.PassageCount())
	})

	t.Run("Keeps insertion order", func(t *testing.T) {
		center := Cell{Row: 1, Col: 1}
		require.NoError(t, m.Connect(center, Cell{Row: 0, Col: 1}))
		require.NoError(t, m.Connect(Cell{Row: 1, Col: 0}, center))
		want := []Cell{{1, 2}, {0, 1}, {1, 0}}
		if diff := cmp.Diff(want, m.Passages(center)); diff != "" {
			t.Errorf("Passages mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Rejects invalid pairs", func(t *testing.T) {
		assert.ErrorIs(t, m.Connect(Cell{Row: 0, Col: 0}, Cell{Row: 0, Col: 0}), ErrNotAdjacent)
		assert.ErrorIs(t, m.Connect(Cell{Row: 0, Col: 0}, Cell{Row: 1, Col: 1}), ErrNotAdjacent)
		assert.ErrorIs(t, m.Connect(Cell{Row: 0, Col: 0}, Cell{Row: 0, Col: 2}), ErrNotAdjacent)
		assert.ErrorIs(t, m.Connect(Cell{Row: 2, Col: 2}, Cell{Row: 2, Col: 3}), ErrOutOfBounds)
		assert.True(t, errors.Is(m.Connect(Cell{Row: -1, Col: 0}, Cell{Row: 0, Col: 0}), ErrOutOfBounds))
	})

	t.Run("Passages returns a copy", func(t *testing.T) {
		center := Cell{Row: 1, Col: 1}
		got := m.Passages(center)
		got[0] = Cell{Row: 9, Col: 9}
		assert.NotContains(t, m.Passages(center), Cell{Row: 9, Col: 9})
		assert.Nil(t, m.Passages(Cell{Row: 5, Col: 5}))
		assert.False(t, m.HasPassage(Cell{Row: 5, Col: 5}, center))
	})
}
