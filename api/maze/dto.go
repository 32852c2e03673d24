// Package mazeapi exposes maze generation and solving over HTTP.
package mazeapi

import (
	"time"

	"github.com/beka-birhanu/vinom-maze/analysis"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
)

// CellDTO is a cell coordinate on the wire.
type CellDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// BuildRequest is the body of a protected maze build.
type BuildRequest struct {
	Width  int      `json:"width" binding:"required"`
	Height int      `json:"height" binding:"required"`
	Seed   *int64   `json:"seed"`
	Start  *CellDTO `json:"start"`
	Goal   *CellDTO `json:"goal"`
}

// SampleQuery is the query string of a public maze build.
type SampleQuery struct {
	Width  int    `form:"width" binding:"required"`
	Height int    `form:"height" binding:"required"`
	Seed   *int64 `form:"seed"`
}

// MazeResponse describes a built maze. Maze holds the raw '#' art with start and goal
// openings; Solution holds the boxed drawing with the path marked.
type MazeResponse struct {
	ID        string         `json:"id"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Seed      int64          `json:"seed"`
	Start     CellDTO        `json:"start"`
	Goal      CellDTO        `json:"goal"`
	Path      []CellDTO      `json:"path"`
	Stats     analysis.Stats `json:"stats"`
	Maze      []string       `json:"maze"`
	Solution  []string       `json:"solution"`
	CreatedAt time.Time      `json:"created_at"`
}

func (r BuildRequest) toDomain() dmn.MazeRequest {
	return dmn.MazeRequest{
		Width:  r.Width,
		Height: r.Height,
		Seed:   r.Seed,
		Start:  r.Start.toCell(),
		Goal:   r.Goal.toCell(),
	}
}

func (c *CellDTO) toCell() *maze.Cell {
	if c == nil {
		return nil
	}
	return &maze.Cell{Row: c.Row, Col: c.Col}
}

func cellDTO(c maze.Cell) CellDTO {
	return CellDTO{Row: c.Row, Col: c.Col}
}

func newMazeResponse(b *dmn.MazeBuild) *MazeResponse {
	grid := render.Build(b.Maze, &b.Start, &b.Goal)
	path := make([]CellDTO, 0, len(b.Path))
	for _, c := range b.Path {
		path = append(path, cellDTO(c))
	}

	return &MazeResponse{
		ID:        b.ID.String(),
		Width:     b.Maze.Width(),
		Height:    b.Maze.Height(),
		Seed:      b.Seed,
		Start:     cellDTO(b.Start),
		Goal:      cellDTO(b.Goal),
		Path:      path,
		Stats:     b.Stats,
		Maze:      render.Lines(render.Plain(grid)),
		Solution:  render.Lines(render.Pretty(grid, &b.Start, &b.Goal, b.Path)),
		CreatedAt: b.CreatedAt,
	}
}
