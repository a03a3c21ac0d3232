package mazeapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	dmn "github.com/amazing-mazes/maze-api/domain"
	"github.com/amazing-mazes/maze-api/generator"
	"github.com/amazing-mazes/maze-api/infrastruture/repo"
	"github.com/amazing-mazes/maze-api/maze"
	"github.com/amazing-mazes/maze-api/service/i"
	"github.com/amazing-mazes/maze-api/solver"
)

// MazeController handles maze lifecycle requests. Reads and renders are
// public; carving and solving require authentication.
type MazeController struct {
	mazes  i.MazeManager
	logger i.Logger
}

// NewMazeController initializes a MazeController.
func NewMazeController(mazes i.MazeManager, logger i.Logger) (*MazeController, error) {
	if mazes == nil || logger == nil {
		return nil, errors.New("maze controller requires a maze manager and a logger")
	}
	return &MazeController{
		mazes:  mazes,
		logger: logger,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", mc.getMaze)
		mazes.GET("/:ID/image", mc.getMazeImage)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.generate)
		mazes.POST("/:ID/solve", mc.solve)
	}
}

// generate handles maze creation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// An unparsable seed is advisory, not fatal: warn and fall back to a
	// non-deterministic one.
	var seed *int64
	if request.Seed != "" {
		if parsed, err := strconv.ParseInt(request.Seed, 10, 64); err == nil {
			seed = &parsed
		} else {
			mc.logger.Warning(fmt.Sprintf("Invalid seed %q, falling back to a random one", request.Seed))
		}
	}

	m, err := mc.mazes.Generate(ctx, request.Algorithm, request.Size, seed)
	if err != nil {
		if errors.Is(err, maze.ErrInvalidSize) || errors.Is(err, generator.ErrUnknownAlgorithm) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, toMazeResponse(m))
}

// getMaze retrieves a stored maze.
func (mc *MazeController) getMaze(ctx *gin.Context) {
	id, ok := mc.parseID(ctx)
	if !ok {
		return
	}

	m, err := mc.mazes.ByID(ctx, id)
	if err != nil {
		mc.respondFetchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toMazeResponse(m))
}

// getMazeImage renders a stored maze as PNG. The cell query parameter
// controls the pixel size of one grid position.
func (mc *MazeController) getMazeImage(ctx *gin.Context) {
	id, ok := mc.parseID(ctx)
	if !ok {
		return
	}

	cellSize, _ := strconv.Atoi(ctx.DefaultQuery("cell", "10"))

	img, err := mc.mazes.Render(ctx, id, cellSize)
	if err != nil {
		mc.respondFetchError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "image/png", img)
}

// solve runs a solver over a stored maze.
func (mc *MazeController) solve(ctx *gin.Context) {
	id, ok := mc.parseID(ctx)
	if !ok {
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, found, err := mc.mazes.Solve(ctx, id, request.Algorithm)
	if err != nil {
		switch {
		case errors.Is(err, solver.ErrUnknownAlgorithm):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, repo.ErrMazeNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, maze.ErrBoundaryNotFound):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while solving maze"})
		}
		return
	}

	ctx.JSON(http.StatusOK, &SolveResponse{
		Maze:      *toMazeResponse(m),
		PathFound: found,
	})
}

func (mc *MazeController) parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return uuid.Nil, false
	}
	return id, true
}

func (mc *MazeController) respondFetchError(ctx *gin.Context, err error) {
	if errors.Is(err, repo.ErrMazeNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while fetching maze"})
}

func toMazeResponse(m *dmn.Maze) *MazeResponse {
	return &MazeResponse{
		ID:         m.ID.String(),
		Size:       m.Size,
		Algorithm:  m.Algorithm,
		Seed:       m.Seed,
		Grid:       m.GridText,
		Solved:     m.Solved,
		SolvedWith: m.SolvedWith,
	}
}
