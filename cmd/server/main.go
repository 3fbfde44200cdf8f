package main

import (
	"github.com/context-ai/showcase/backend/internal/server"
	"github.com/context-ai/showcase/backend/internal/util"
	"github.com/context-ai/showcase/backend/pkg/logger"
	"github.com/context-ai/showcase/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
