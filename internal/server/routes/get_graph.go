package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/context-ai/showcase/backend/internal/server/middleware"
	"github.com/context-ai/showcase/backend/pkg/common"
	"github.com/context-ai/showcase/backend/pkg/graph"
	"github.com/context-ai/showcase/backend/pkg/journey"
)

// GetGraphHandler renders the knowledge graph snapshot for one archetype at
// one journey stage. An optional month query overrides the stage's default
// position in the data series; out-of-range values are clamped.
func GetGraphHandler(c echo.Context) error {
	type getGraphData struct {
		Archetype string `param:"archetype" validate:"required"`
		Stage     string `query:"stage"`
		Month     *int   `query:"month"`
	}

	type getGraphResponse struct {
		Message string          `json:"message,omitempty"`
		Stage   string          `json:"stage,omitempty"`
		Graph   *graph.Snapshot `json:"graph,omitempty"`
	}

	data := new(getGraphData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, getGraphResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, getGraphResponse{
			Message: "Invalid request params",
		})
	}

	archetype, err := common.ParseArchetype(data.Archetype)
	if err != nil {
		return c.JSON(http.StatusNotFound, getGraphResponse{
			Message: "Unknown archetype",
		})
	}

	stage := common.StageInitialApplication
	if data.Stage != "" {
		stage, err = common.ParseStage(data.Stage)
		if err != nil {
			return c.JSON(http.StatusNotFound, getGraphResponse{
				Message: "Unknown stage",
			})
		}
	}

	app := c.(*middleware.AppContext).App
	ds, err := app.Generator.Dataset(c.Request().Context(), archetype, app.Store)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, getGraphResponse{
			Message: "Internal server error",
		})
	}

	stageIndex := journey.DefaultStageIndex
	if data.Month != nil {
		stageIndex = map[string]int{stage: *data.Month}
	}

	return c.JSON(http.StatusOK, getGraphResponse{
		Stage: stage,
		Graph: journey.GraphForStage(ds, stage, stageIndex),
	})
}
