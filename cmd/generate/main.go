package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/context-ai/showcase/backend/internal/util"
	"github.com/context-ai/showcase/backend/pkg/logger"
	"github.com/context-ai/showcase/backend/pkg/logger/console"
	"github.com/context-ai/showcase/backend/pkg/scenario"
	"github.com/context-ai/showcase/backend/pkg/store/fs"
)

// Pre-warms the dataset cache for every archetype so the first demo request
// never waits on generation.
func main() {
	util.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	debug := util.GetEnvBool("DEBUG", false)
	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	dataDir := util.GetEnvString("DATA_DIR", "data")
	storeClient := fs.NewStore(dataDir)

	generator := scenario.NewGenerator(scenario.NewGeneratorParams{
		Seed: util.GetEnvInt("GENERATOR_SEED", 0),
	})

	start := time.Now()
	if err := generator.GenerateAll(ctx, storeClient); err != nil {
		logger.Fatal("Failed to generate datasets", "err", err)
	}

	logger.Info("Datasets ready", "data_dir", dataDir, "duration", time.Since(start).String())
}
