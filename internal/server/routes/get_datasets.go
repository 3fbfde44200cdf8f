package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/context-ai/showcase/backend/internal/server/middleware"
	"github.com/context-ai/showcase/backend/pkg/common"
)

// GetDatasetHandler serves the full dataset bundle for one archetype,
// generating and caching it on first use.
func GetDatasetHandler(c echo.Context) error {
	type getDatasetData struct {
		Archetype string `param:"archetype" validate:"required"`
	}

	type getDatasetResponse struct {
		Message string          `json:"message,omitempty"`
		Dataset *common.Dataset `json:"dataset,omitempty"`
	}

	data := new(getDatasetData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, getDatasetResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, getDatasetResponse{
			Message: "Invalid request params",
		})
	}

	archetype, err := common.ParseArchetype(data.Archetype)
	if err != nil {
		return c.JSON(http.StatusNotFound, getDatasetResponse{
			Message: "Unknown archetype",
		})
	}

	app := c.(*middleware.AppContext).App
	ds, err := app.Generator.Dataset(c.Request().Context(), archetype, app.Store)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, getDatasetResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, getDatasetResponse{
		Dataset: ds,
	})
}
