package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/context-ai/showcase/backend/internal/server/middleware"
	"github.com/context-ai/showcase/backend/internal/session"
)

// GetSessionHandler returns the current state of one viewer session.
func GetSessionHandler(c echo.Context) error {
	type getSessionData struct {
		ID string `param:"id" validate:"required"`
	}

	type getSessionResponse struct {
		Message string         `json:"message,omitempty"`
		Session *session.State `json:"session,omitempty"`
		Stage   string         `json:"stage,omitempty"`
	}

	data := new(getSessionData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, getSessionResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, getSessionResponse{
			Message: "Invalid request params",
		})
	}

	app := c.(*middleware.AppContext).App
	s, err := app.Sessions.Get(data.ID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return c.JSON(http.StatusNotFound, getSessionResponse{
				Message: "Session not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, getSessionResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, getSessionResponse{
		Session: &s,
		Stage:   s.Stage(),
	})
}
