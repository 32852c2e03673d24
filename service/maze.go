package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/analysis"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

var (
	ErrDimensionTooLarge = errors.New("maze dimension too large")
)

var _ i.MazeBuilder = &MazeService{}

// MazeService builds solved mazes on request.
type MazeService struct {
	logger i.Logger
	now    func() time.Time
}

// NewMazeService creates a MazeService that logs every build to logger.
func NewMazeService(logger i.Logger) (*MazeService, error) {
	if logger == nil {
		return nil, errors.New("maze service requires a logger")
	}
	return &MazeService{logger: logger, now: time.Now}, nil
}

// Build generates the requested maze from its start cell and solves it from start to goal.
func (s *MazeService) Build(req dmn.MazeRequest, limit int) (*dmn.MazeBuild, error) {
	if limit > 0 && max(req.Width, req.Height) > limit {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrDimensionTooLarge, req.Width, req.Height, limit)
	}

	seed := s.now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	m, err := maze.New(req.Width, req.Height, maze.WithSeed(seed))
	if err != nil {
		return nil, err
	}

	start := maze.Cell{Row: 0, Col: 0}
	if req.Start != nil {
		start = *req.Start
	}
	goal := maze.Cell{Row: req.Height - 1, Col: req.Width - 1}
	if req.Goal != nil {
		goal = *req.Goal
	}
	if !m.Contains(goal) {
		return nil, fmt.Errorf("%w: goal %s", maze.ErrOutOfBounds, goal)
	}

	if err := m.Generate(&start); err != nil {
		return nil, err
	}

	path, err := maze.NewSolver(m).Solve(start, goal)
	if err != nil {
		return nil, err
	}

	stats, err := analysis.Analyze(m, start, goal)
	if err != nil {
		return nil, err
	}
	if !stats.Perfect {
		s.logger.Warning(fmt.Sprintf("Generated maze is not perfect: seed=%d size=%dx%d components=%d", seed, req.Width, req.Height, stats.Components))
	}

	build := &dmn.MazeBuild{
		ID:        uuid.New(),
		Seed:      seed,
		Maze:      m,
		Start:     start,
		Goal:      goal,
		Path:      path,
		Stats:     stats,
		CreatedAt: s.now().UTC(),
	}
	s.logger.Info(fmt.Sprintf("Built maze: ID=%s seed=%d size=%dx%d path=%d", build.ID, seed, req.Width, req.Height, len(path)))
	return build, nil
}
