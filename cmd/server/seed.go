package main

import (
	"context"
	"fmt"

	"github.com/snnyvrz/bookstore/internal/app"
	"github.com/snnyvrz/bookstore/internal/config"
	"github.com/snnyvrz/bookstore/internal/logger"
	"github.com/spf13/cobra"
)

func SeedCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "add a small sample catalog to the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg)

			a, err := app.New(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			n, err := app.Seed(ctx, a.Catalog, log)
			if err != nil {
				return fmt.Errorf("seed catalog: %w", err)
			}

			log.WithField("books", n).Info("seed complete")
			return nil
		},
	}
}
