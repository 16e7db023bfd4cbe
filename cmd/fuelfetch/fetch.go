package main

import (
	"errors"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/simonykma/FuelSaverUK-Data/internal/config"
	"github.com/simonykma/FuelSaverUK-Data/internal/govuk"
	"github.com/simonykma/FuelSaverUK-Data/internal/logger"
	"github.com/simonykma/FuelSaverUK-Data/internal/pipeline"
	"github.com/simonykma/FuelSaverUK-Data/internal/storage"
)

func fetchCommand() *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "Run one fetch-aggregate-normalize-save pass",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Snapshot output path",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "Fuel Finder API base URL",
			},
			&cli.StringFlag{
				Name:  "backend",
				Usage: "Storage backend (local or gcs)",
			},
		},
		Action: fetchAction,
	}
}

func fetchAction(c *cli.Context) error {
	ctx := c.Context

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if v := c.String("output"); v != "" {
		cfg.OutputPath = v
	}
	if v := c.String("base-url"); v != "" {
		cfg.BaseURL = v
	}
	if v := c.String("backend"); v != "" {
		cfg.StorageBackend = v
	}

	log := logger.New(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat, os.Stdout)

	if err := cfg.Validate(); err != nil {
		log.Errorf("configuration error: %v", err)
		return err
	}

	store, err := storage.New(ctx, cfg)
	if err != nil {
		log.Errorf("storage error: %v", err)
		return err
	}
	defer store.Close()

	client := govuk.NewClient(cfg, log)
	writer := pipeline.NewWriter(store, cfg.OutputPath, log)
	runner := pipeline.NewRunner(client, client, writer, cfg.FuelTypes, log)

	log.Infof("starting GOV UK Fuel Finder data fetch")
	log.Infof("API base URL: %s", cfg.BaseURL)

	if err := runner.Run(ctx); err != nil {
		switch {
		case errors.Is(err, pipeline.ErrNoStations):
			log.Errorf("no stations fetched")
		case errors.Is(err, pipeline.ErrNoValidStations):
			log.Errorf("no valid stations after transformation")
		default:
			log.Errorf("fetch failed: %v", err)
		}
		return err
	}

	return nil
}
