package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/Sakee8848/property-management-ai/internal/client/cli"
	"github.com/Sakee8848/property-management-ai/internal/client/config"
	"github.com/Sakee8848/property-management-ai/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("error initializing client: %s", err)
	}

	app.Main()
}
