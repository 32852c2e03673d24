package i

import dmn "github.com/beka-birhanu/vinom-maze/domain"

// MazeBuilder generates, solves and analyzes mazes.
type MazeBuilder interface {
	// Build returns a generated maze and the solved path for the request.
	// limit caps both dimensions.
	Build(req dmn.MazeRequest, limit int) (*dmn.MazeBuild, error)
}
