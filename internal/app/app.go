// Package app wires configuration into stores, repositories and the router.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/snnyvrz/bookstore/internal/cache"
	"github.com/snnyvrz/bookstore/internal/config"
	"github.com/snnyvrz/bookstore/internal/db"
	"github.com/snnyvrz/bookstore/internal/middleware"
	"github.com/snnyvrz/bookstore/internal/repository"
	"github.com/snnyvrz/bookstore/internal/server"
)

type App struct {
	Config *config.Config
	Log    logrus.FieldLogger
	Store  *db.Store
	Redis  *redis.Client

	Feedback repository.FeedbackRepository
	Inquiry  repository.InquiryRepository
	Catalog  repository.CatalogRepository
}

// New opens the configured store and builds every repository on top of
// it. When Redis is configured the catalog is wrapped in the statistics
// cache.
func New(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*App, error) {
	store, err := db.Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg, Log: log, Store: store}

	switch {
	case store.Mongo != nil:
		a.Feedback = repository.NewMongoFeedbackRepository(store.Mongo)
		a.Inquiry = repository.NewMongoInquiryRepository(store.Mongo)
		a.Catalog = repository.NewMongoCatalogRepository(ctx, store.Mongo, log.WithField("repository", "catalog"))
	default:
		a.Feedback = repository.NewGormFeedbackRepository(store.SQL)
		a.Inquiry = repository.NewGormInquiryRepository(store.SQL)
		a.Catalog = repository.NewGormCatalogRepository(store.SQL)
	}

	if cfg.CacheEnabled() {
		a.Redis = cache.NewClient(cfg)
		statsCache := cache.NewRedisStatsCache(a.Redis, cache.DefaultKey, cfg.StatsCacheTTL)
		a.Catalog = repository.NewCachedCatalogRepository(a.Catalog, statsCache, log.WithField("cache", "redis"))
		log.WithField("addr", cfg.RedisAddr).Info("statistics cache enabled")
	}

	return a, nil
}

// ParseServices validates a comma-separated --only value. Empty means
// every service.
func ParseServices(only string) (map[string]bool, error) {
	enabled := map[string]bool{}
	if strings.TrimSpace(only) == "" {
		for _, s := range server.AllServices {
			enabled[s] = true
		}
		return enabled, nil
	}

	known := map[string]bool{}
	for _, s := range server.AllServices {
		known[s] = true
	}

	for _, part := range strings.Split(only, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if !known[name] {
			return nil, fmt.Errorf("unknown service %q (want one of %s)", name, strings.Join(server.AllServices, ", "))
		}
		enabled[name] = true
	}
	return enabled, nil
}

// Deps builds the router dependencies for the enabled services.
func (a *App) Deps(enabled map[string]bool, limiter *middleware.RateLimiter, startTime time.Time, version string) server.Deps {
	d := server.Deps{
		Store:       a.Store,
		Driver:      a.Store.Driver,
		Log:         a.Log,
		RateLimiter: limiter,
		CORSOrigins: a.Config.CORSAllowedOrigins,
		StartTime:   startTime,
		Version:     version,
	}
	if enabled[server.ServiceFeedback] {
		d.Feedback = a.Feedback
	}
	if enabled[server.ServiceInquiry] {
		d.Inquiry = a.Inquiry
	}
	if enabled[server.ServiceCatalog] {
		d.Catalog = a.Catalog
	}
	return d
}

func (a *App) Close(ctx context.Context) error {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Log.WithError(err).Warn("failed to close redis client")
		}
	}
	return a.Store.Close(ctx)
}
