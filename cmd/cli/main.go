package main

import (
	"context"
	"log"

	"github.com/trananh2004/shopfront/internal/client/cli"
	"github.com/trananh2004/shopfront/internal/client/config"
	"github.com/trananh2004/shopfront/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.NewDevelopment()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
