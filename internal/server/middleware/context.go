package middleware

import (
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/labstack/echo/v4"

	"github.com/context-ai/showcase/backend/internal/session"
	"github.com/context-ai/showcase/backend/pkg/scenario"
	"github.com/context-ai/showcase/backend/pkg/store"
)

type App struct {
	Generator  *scenario.Generator
	Store      store.DatasetStorage
	Sessions   *session.Registry
	S3         *s3.Client
	DemoAPIKey string
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
