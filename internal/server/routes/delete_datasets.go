package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/context-ai/showcase/backend/internal/server/middleware"
	"github.com/context-ai/showcase/backend/pkg/common"
)

// DeleteDatasetHandler drops the cached dataset for one archetype. The next
// read regenerates it.
func DeleteDatasetHandler(c echo.Context) error {
	type deleteDatasetData struct {
		Archetype string `param:"archetype" validate:"required"`
	}

	type deleteDatasetResponse struct {
		Message string `json:"message"`
	}

	data := new(deleteDatasetData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, deleteDatasetResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, deleteDatasetResponse{
			Message: "Invalid request params",
		})
	}

	archetype, err := common.ParseArchetype(data.Archetype)
	if err != nil {
		return c.JSON(http.StatusNotFound, deleteDatasetResponse{
			Message: "Unknown archetype",
		})
	}

	app := c.(*middleware.AppContext).App
	if err := app.Store.Delete(c.Request().Context(), archetype); err != nil {
		return c.JSON(http.StatusInternalServerError, deleteDatasetResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, deleteDatasetResponse{
		Message: "Dataset deleted successfully",
	})
}
