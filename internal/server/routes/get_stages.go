package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/context-ai/showcase/backend/pkg/common"
	"github.com/context-ai/showcase/backend/pkg/journey"
)

// GetStagesHandler lists the journey stages in order together with the month
// of the data series each stage renders by default.
func GetStagesHandler(c echo.Context) error {
	type getStagesResponse struct {
		Stages       []string       `json:"stages"`
		DefaultMonth map[string]int `json:"default_month"`
	}

	return c.JSON(http.StatusOK, getStagesResponse{
		Stages:       common.Stages,
		DefaultMonth: journey.DefaultStageIndex,
	})
}
