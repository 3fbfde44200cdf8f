package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/context-ai/showcase/backend/internal/server/middleware"
	"github.com/context-ai/showcase/backend/internal/storage"
)

// DeleteExportHandler removes every object of one previous export so download
// links stop accumulating in the bucket.
func DeleteExportHandler(c echo.Context) error {
	type deleteExportData struct {
		ID string `param:"id" validate:"required"`
	}

	type deleteExportResponse struct {
		Message string `json:"message"`
	}

	data := new(deleteExportData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, deleteExportResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, deleteExportResponse{
			Message: "Invalid request params",
		})
	}

	app := c.(*middleware.AppContext).App
	if app.S3 == nil {
		return c.JSON(http.StatusServiceUnavailable, deleteExportResponse{
			Message: "Export storage not configured",
		})
	}

	if err := storage.DeleteExports(c.Request().Context(), app.S3, data.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, deleteExportResponse{
			Message: "Failed to delete export",
		})
	}

	return c.JSON(http.StatusOK, deleteExportResponse{
		Message: "Export deleted successfully",
	})
}
