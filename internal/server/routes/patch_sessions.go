package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/context-ai/showcase/backend/internal/server/middleware"
	"github.com/context-ai/showcase/backend/internal/session"
	"github.com/context-ai/showcase/backend/pkg/common"
)

// EditSessionHandler mutates one viewer session: switch archetype, jump to a
// stage, advance or retreat by one stage, or toggle debug rendering. Stage
// movement is clamped to the journey bounds.
func EditSessionHandler(c echo.Context) error {
	type editSessionData struct {
		ID         string  `param:"id" validate:"required"`
		Archetype  *string `json:"archetype"`
		StageIndex *int    `json:"stage_index"`
		Advance    *int    `json:"advance"`
		Debug      *bool   `json:"debug"`
	}

	type editSessionResponse struct {
		Message string         `json:"message,omitempty"`
		Session *session.State `json:"session,omitempty"`
		Stage   string         `json:"stage,omitempty"`
	}

	data := new(editSessionData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, editSessionResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, editSessionResponse{
			Message: "Invalid request params",
		})
	}

	var archetype common.Archetype
	if data.Archetype != nil {
		parsed, err := common.ParseArchetype(*data.Archetype)
		if err != nil {
			return c.JSON(http.StatusBadRequest, editSessionResponse{
				Message: "Unknown archetype",
			})
		}
		archetype = parsed
	}

	app := c.(*middleware.AppContext).App
	s, err := app.Sessions.Update(data.ID, func(s *session.State) {
		if data.Archetype != nil {
			s.Archetype = archetype
		}
		if data.StageIndex != nil {
			s.StageIndex = *data.StageIndex
		}
		if data.Advance != nil {
			s.StageIndex += *data.Advance
		}
		if data.Debug != nil {
			s.Debug = *data.Debug
		}
	})
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return c.JSON(http.StatusNotFound, editSessionResponse{
				Message: "Session not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, editSessionResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, editSessionResponse{
		Message: "Session updated successfully",
		Session: &s,
		Stage:   s.Stage(),
	})
}
