package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/context-ai/showcase/backend/internal/server/middleware"
	"github.com/context-ai/showcase/backend/internal/session"
	"github.com/context-ai/showcase/backend/pkg/common"
)

// CreateSessionHandler starts a new viewer session on the first journey
// stage of the requested archetype.
func CreateSessionHandler(c echo.Context) error {
	type createSessionData struct {
		Archetype string `json:"archetype" validate:"required"`
	}

	type createSessionResponse struct {
		Message string         `json:"message,omitempty"`
		Session *session.State `json:"session,omitempty"`
		Stage   string         `json:"stage,omitempty"`
	}

	data := new(createSessionData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createSessionResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createSessionResponse{
			Message: "Invalid request params",
		})
	}

	archetype, err := common.ParseArchetype(data.Archetype)
	if err != nil {
		return c.JSON(http.StatusBadRequest, createSessionResponse{
			Message: "Unknown archetype",
		})
	}

	app := c.(*middleware.AppContext).App
	s, err := app.Sessions.Create(archetype)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createSessionResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusCreated, createSessionResponse{
		Message: "Session created successfully",
		Session: &s,
		Stage:   s.Stage(),
	})
}
