package server

import (
	"github.com/context-ai/showcase/backend/internal/server/middleware"
	"github.com/context-ai/showcase/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Vocabulary routes
	apiRoutes.GET("/archetypes", routes.GetArchetypesHandler)
	apiRoutes.GET("/stages", routes.GetStagesHandler)

	// Dataset routes
	apiRoutes.GET("/datasets/:archetype", routes.GetDatasetHandler)
	apiRoutes.DELETE("/datasets/:archetype", routes.DeleteDatasetHandler)
	apiRoutes.GET("/datasets/:archetype/graph", routes.GetGraphHandler)
	apiRoutes.GET("/datasets/:archetype/export", routes.ExportDatasetHandler)
	apiRoutes.DELETE("/exports/:id", routes.DeleteExportHandler)

	// Session routes
	apiRoutes.POST("/sessions", routes.CreateSessionHandler)
	apiRoutes.GET("/sessions/:id", routes.GetSessionHandler)
	apiRoutes.PATCH("/sessions/:id", routes.EditSessionHandler)
}
