package domain

import (
	"time"

	"github.com/beka-birhanu/vinom-maze/analysis"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeRequest describes a maze to build. Nil fields take their defaults:
// a clock-derived seed, start at (0,0) and goal at (height-1,width-1).
type MazeRequest struct {
	Width  int
	Height int
	Seed   *int64
	Start  *maze.Cell
	Goal   *maze.Cell
}

// MazeBuild is a generated maze with one solved path through it.
// The Maze is frozen: nothing mutates it after Build returns.
type MazeBuild struct {
	ID        uuid.UUID
	Seed      int64
	Maze      *maze.Maze
	Start     maze.Cell
	Goal      maze.Cell
	Path      []maze.Cell
	Stats     analysis.Stats
	CreatedAt time.Time
}
