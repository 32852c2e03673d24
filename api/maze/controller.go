package mazeapi

import (
	"errors"
	"fmt"
	"net/http"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	pb "github.com/beka-birhanu/vinom-maze/pb_encoder"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	protobufContentType = "application/x-protobuf"
	protobufFormat      = "pb"
)

// Config holds the dependencies of a MazeController.
type Config struct {
	Builder            i.MazeBuilder
	Limiter            i.RateLimiter // Optional; protected builds are unlimited without one.
	Logger             i.Logger
	MaxDimension       int // Cap for protected builds
	PublicMaxDimension int // Cap for public builds
}

// MazeController serves maze builds.
type MazeController struct {
	builder            i.MazeBuilder
	limiter            i.RateLimiter
	logger             i.Logger
	maxDimension       int
	publicMaxDimension int
}

// NewMazeController initializes a MazeController.
func NewMazeController(c Config) (*MazeController, error) {
	if c.Builder == nil || c.Logger == nil {
		return nil, errors.New("maze controller requires a builder and a logger")
	}
	return &MazeController{
		builder:            c.Builder,
		limiter:            c.Limiter,
		logger:             c.Logger,
		maxDimension:       c.MaxDimension,
		publicMaxDimension: c.PublicMaxDimension,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/mazes", mc.sample)
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	if mc.limiter != nil {
		mazes.Use(RateLimit(mc.limiter, mc.logger))
	}
	{
		mazes.POST("", mc.build)
	}
}

// sample handles small unauthenticated builds described by the query string.
func (mc *MazeController) sample(ctx *gin.Context) {
	var query SampleQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mc.respond(ctx, dmn.MazeRequest{Width: query.Width, Height: query.Height, Seed: query.Seed}, mc.publicMaxDimension)
}

// build handles authenticated builds.
func (mc *MazeController) build(ctx *gin.Context) {
	var request BuildRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mc.respond(ctx, request.toDomain(), mc.maxDimension)
}

func (mc *MazeController) respond(ctx *gin.Context, req dmn.MazeRequest, limit int) {
	build, err := mc.builder.Build(req, limit)
	if err != nil {
		if isRequestError(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		mc.logger.Error(fmt.Sprintf("Building maze: %s", err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while building maze"})
		return
	}

	if ctx.Query("format") == protobufFormat {
		snapshot := pb.SnapshotOf(build.Maze, build.Seed, build.Start, build.Goal, build.Path)
		ctx.Data(http.StatusOK, protobufContentType, pb.Marshal(snapshot))
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(build))
}

func isRequestError(err error) bool {
	return errors.Is(err, maze.ErrInvalidDimension) ||
		errors.Is(err, maze.ErrOutOfBounds) ||
		errors.Is(err, service.ErrDimensionTooLarge)
}
