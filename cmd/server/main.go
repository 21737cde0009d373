package main

import (
	"context"
	"log"

	"github.com/trananh2004/shopfront/internal/server"
	"github.com/trananh2004/shopfront/internal/server/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
