package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/ankit-0903/sentinel-vault/internal/cli"
	"github.com/ankit-0903/sentinel-vault/internal/config"
	"github.com/ankit-0903/sentinel-vault/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
