package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "github.com/context-ai/showcase/backend/internal/server/middleware"
	"github.com/context-ai/showcase/backend/internal/session"
	"github.com/context-ai/showcase/backend/internal/storage"
	"github.com/context-ai/showcase/backend/internal/util"
	"github.com/context-ai/showcase/backend/pkg/logger"
	"github.com/context-ai/showcase/backend/pkg/scenario"
	"github.com/context-ai/showcase/backend/pkg/store/fs"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataDir := util.GetEnvString("DATA_DIR", "data")
	storeClient := fs.NewStore(dataDir)

	generator := scenario.NewGenerator(scenario.NewGeneratorParams{
		Seed: util.GetEnvInt("GENERATOR_SEED", 0),
	})

	s3 := storage.NewS3Client(ctx)

	app := &mid.App{
		Generator:  generator,
		Store:      storeClient,
		Sessions:   session.NewRegistry(),
		S3:         s3,
		DemoAPIKey: util.GetEnv("DEMO_API_KEY"),
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1M"))

	RegisterRoutes(e)

	go func() {
		port := util.GetEnv("PORT")
		if port == "" {
			port = "8080"
		}
		logger.Info("Starting server", "port", port, "data_dir", dataDir)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
