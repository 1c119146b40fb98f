package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/bankclient/internal/client/cli"
	"github.com/dmitrijs2005/bankclient/internal/client/config"
	"github.com/dmitrijs2005/bankclient/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.New(cfg.LogLevel, os.Stderr)

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "start client", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error(ctx, "run client", "error", err)
		os.Exit(1)
	}
}
