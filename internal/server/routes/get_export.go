package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/context-ai/showcase/backend/internal/server/middleware"
	"github.com/context-ai/showcase/backend/internal/storage"
	"github.com/context-ai/showcase/backend/pkg/common"
)

// ExportDatasetHandler copies the archetype's dataset out to S3 and returns a
// time-limited download link.
func ExportDatasetHandler(c echo.Context) error {
	type exportDatasetData struct {
		Archetype string `param:"archetype" validate:"required"`
	}

	type exportDatasetResponse struct {
		Message     string `json:"message,omitempty"`
		Key         string `json:"key,omitempty"`
		DownloadURL string `json:"download_url,omitempty"`
	}

	data := new(exportDatasetData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, exportDatasetResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, exportDatasetResponse{
			Message: "Invalid request params",
		})
	}

	archetype, err := common.ParseArchetype(data.Archetype)
	if err != nil {
		return c.JSON(http.StatusNotFound, exportDatasetResponse{
			Message: "Unknown archetype",
		})
	}

	app := c.(*middleware.AppContext).App
	if app.S3 == nil {
		return c.JSON(http.StatusServiceUnavailable, exportDatasetResponse{
			Message: "Export storage not configured",
		})
	}

	ctx := c.Request().Context()
	ds, err := app.Generator.Dataset(ctx, archetype, app.Store)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, exportDatasetResponse{
			Message: "Internal server error",
		})
	}

	key, err := storage.ExportDataset(ctx, app.S3, archetype, ds)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, exportDatasetResponse{
			Message: "Failed to export dataset",
		})
	}

	link, err := storage.GenerateDownloadLink(ctx, app.S3, key)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, exportDatasetResponse{
			Message: "Failed to generate download link",
		})
	}

	return c.JSON(http.StatusOK, exportDatasetResponse{
		Key:         key,
		DownloadURL: link,
	})
}
