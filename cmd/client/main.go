package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/sunyue-dev/time-exchange/internal/cli"
	"github.com/sunyue-dev/time-exchange/internal/config"
	"github.com/sunyue-dev/time-exchange/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewDefault(slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
