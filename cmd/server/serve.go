package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/snnyvrz/bookstore/internal/app"
	"github.com/snnyvrz/bookstore/internal/config"
	"github.com/snnyvrz/bookstore/internal/logger"
	"github.com/snnyvrz/bookstore/internal/middleware"
	"github.com/snnyvrz/bookstore/internal/server"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout     = 15 * time.Second
	schemaRetryInterval = 5 * time.Second
)

func ServeCommand(ctx context.Context) *cobra.Command {
	var addr string
	var only string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run the bookstore http server",
		RunE: func(cmd *cobra.Command, args []string) error {
			startTime := time.Now()

			enabled, err := app.ParseServices(only)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			log := logger.New(cfg)
			gin.SetMode(cfg.GinMode)

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			a, err := app.New(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer func() {
				cancel()
				closeCtx, closeCancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer closeCancel()
				if err := a.Close(closeCtx); err != nil {
					log.WithError(err).Warn("failed to close store")
				}
			}()

			go a.Store.AwaitSchema(ctx, schemaRetryInterval, log)

			limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
			go limiter.Run(ctx)

			router := server.NewRouter(a.Deps(enabled, limiter, startTime, appVersion))

			return listen(ctx, log, &http.Server{
				Addr:              cfg.Addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
				IdleTimeout:       15 * time.Minute,
			})
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address, overrides APP_ADDR")
	cmd.Flags().StringVar(&only, "only", "", "comma-separated services to mount ("+strings.Join(server.AllServices, ",")+")")

	return cmd
}

// listen serves until the server fails or the process is told to stop,
// then drains in-flight requests.
func listen(ctx context.Context, log logrus.FieldLogger, srv *http.Server) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	errCh := make(chan error, 1)

	log.WithField("addr", srv.Addr).Info("server starting")
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)

	case <-sig:
		log.Info("kill signal received, shutting down")
		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("error shutting down server: %w", err)
		}

		log.Info("shutdown complete")
		return nil
	}
}
