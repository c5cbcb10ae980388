package labyrinthapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cbs4385/labyrinth-api/maze"
	"github.com/cbs4385/labyrinth-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 50
)

// LabyrinthController manages labyrinth generation and retrieval.
type LabyrinthController struct {
	generator i.LabyrinthGenerator
}

// NewLabyrinthController initializes a LabyrinthController.
func NewLabyrinthController(g i.LabyrinthGenerator) (*LabyrinthController, error) {
	if g == nil {
		return nil, errors.New("labyrinth controller requires a generator")
	}
	return &LabyrinthController{
		generator: g,
	}, nil
}

// RegisterPublic registers public routes.
func (lc *LabyrinthController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (lc *LabyrinthController) RegisterProtected(route *gin.RouterGroup) {
	labyrinth := route.Group("/labyrinth")
	{
		labyrinth.POST("/", lc.generate)
		labyrinth.GET("/recent", lc.recent)
		labyrinth.GET("/:ID", lc.byID)
	}
}

// generate handles labyrinth creation requests.
func (lc *LabyrinthController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	labyrinth, err := lc.generator.Generate(ctx, request.Width, request.Height, request.Entrances, request.Seed)
	if err != nil {
		if isParameterError(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating labyrinth"})
		return
	}

	ctx.JSON(http.StatusCreated, newLabyrinthResponse(labyrinth))
}

// byID retrieves a previously generated labyrinth.
func (lc *LabyrinthController) byID(ctx *gin.Context) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	labyrinth, err := lc.generator.ByID(ctx, ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no labyrinth"})
		return
	}

	ctx.JSON(http.StatusOK, newLabyrinthResponse(labyrinth))
}

// recent lists the most recently generated labyrinth IDs.
func (lc *LabyrinthController) recent(ctx *gin.Context) {
	limit := int64(defaultRecentLimit)
	if raw, ok := ctx.GetQuery("limit"); ok {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	ids, err := lc.generator.Recent(ctx, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while listing labyrinths"})
		return
	}

	ctx.JSON(http.StatusOK, &RecentResponse{IDs: ids})
}

// isParameterError reports whether err is one of the generation
// parameter failures, which map to a client error.
func isParameterError(err error) bool {
	return errors.Is(err, maze.ErrInvalidDimension) ||
		errors.Is(err, maze.ErrInvalidEntranceCount) ||
		errors.Is(err, maze.ErrUnsupportedGridSize)
}
