package service

import (
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMazeService(t *testing.T) (*MazeService, *recordingLogger) {
	t.Helper()
	logger := &recordingLogger{}
	svc, err := NewMazeService(logger)
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Unix(0, 12345) }
	return svc, logger
}

func TestMazeService(t *testing.T) {
	t.Run("Builds with defaults", func(t *testing.T) {
		svc, logger := newTestMazeService(t)
		build, err := svc.Build(dmn.MazeRequest{Width: 6, Height: 4}, 10)
		require.NoError(t, err)

		assert.Equal(t, int64(12345), build.Seed)
		assert.Equal(t, maze.Cell{Row: 0, Col: 0}, build.Start)
		assert.Equal(t, maze.Cell{Row: 3, Col: 5}, build.Goal)
		require.NotEmpty(t, build.Path)
		assert.Equal(t, build.Start, build.Path[0])
		assert.Equal(t, build.Goal, build.Path[len(build.Path)-1])
		assert.True(t, build.Stats.Perfect)
		assert.Equal(t, 23, build.Maze.PassageCount())
		assert.Len(t, logger.infos, 1)
		assert.Empty(t, logger.warnings)
	})

	t.Run("Seed makes builds reproducible", func(t *testing.T) {
		svc, _ := newTestMazeService(t)
		seed := int64(77)
		req := dmn.MazeRequest{Width: 12, Height: 12, Seed: &seed, Start: &maze.Cell{Row: 5, Col: 5}, Goal: &maze.Cell{Row: 0, Col: 11}}

		a, err := svc.Build(req, 0)
		require.NoError(t, err)
		b, err := svc.Build(req, 0)
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, a.Path, b.Path)
		assert.Equal(t, a.Stats, b.Stats)
	})

	t.Run("Rejects bad requests", func(t *testing.T) {
		svc, _ := newTestMazeService(t)

		_, err := svc.Build(dmn.MazeRequest{Width: 0, Height: 4}, 10)
		assert.ErrorIs(t, err, maze.ErrInvalidDimension)

		_, err = svc.Build(dmn.MazeRequest{Width: 11, Height: 4}, 10)
		assert.ErrorIs(t, err, ErrDimensionTooLarge)

		_, err = svc.Build(dmn.MazeRequest{Width: 3, Height: 3, Start: &maze.Cell{Row: 3, Col: 0}}, 10)
		assert.ErrorIs(t, err, maze.ErrOutOfBounds)

		_, err = svc.Build(dmn.MazeRequest{Width: 3, Height: 3, Goal: &maze.Cell{Row: 0, Col: -1}}, 10)
		assert.ErrorIs(t, err, maze.ErrOutOfBounds)
	})

	t.Run("Requires a logger", func(t *testing.T) {
		_, err := NewMazeService(nil)
		assert.Error(t, err)
	})
}
