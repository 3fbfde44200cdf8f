package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/context-ai/showcase/backend/pkg/common"
)

// GetArchetypesHandler lists the applicant archetypes the demo can render.
func GetArchetypesHandler(c echo.Context) error {
	type getArchetypesResponse struct {
		Archetypes []common.Archetype `json:"archetypes"`
	}

	return c.JSON(http.StatusOK, getArchetypesResponse{
		Archetypes: common.Archetypes,
	})
}
