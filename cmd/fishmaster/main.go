// Command fishmaster runs the FishMaster API server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/fishmasterki/fishmaster/internal/config"
	"github.com/fishmasterki/fishmaster/internal/logger"
	"github.com/fishmasterki/fishmaster/internal/metrics"
	"github.com/fishmasterki/fishmaster/internal/objectstore"
	"github.com/fishmasterki/fishmaster/internal/service"
	"github.com/fishmasterki/fishmaster/internal/sigi"
	"github.com/fishmasterki/fishmaster/internal/store"
	"github.com/fishmasterki/fishmaster/internal/weather"
	"github.com/fishmasterki/fishmaster/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Best effort; the .env file is optional.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New("fishmaster")
	ctx := context.Background()

	var st store.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pg.Close()
		st = pg
		log.Info("using postgres store")
	} else {
		st = store.NewMemory()
		log.Info("using in-memory store")
	}

	if err := store.Seed(ctx, st); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}

	objects, err := objectstore.NewDisk(cfg.ObjectDir)
	if err != nil {
		return fmt.Errorf("creating object store: %w", err)
	}

	if cfg.OpenAIKey == "" {
		log.Warn("OPENAI_API_KEY not set, Sigi will serve fallback replies")
	}

	api := &web.API{
		Store:   st,
		Service: service.New(st, log),
		Weather: weather.NewClient(log),
		Sigi:    sigi.NewClient(cfg.OpenAIKey, log),
		Objects: objects,
		Log:     log,
		Metrics: metrics.New("api"),
	}

	return web.NewServer(cfg.Addr, api).Run()
}
