// Package db opens the configured store. Connection failures at startup
// are logged and retried but never fatal: the HTTP server comes up anyway
// and /ready reports the store as down until it answers.
package db

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snnyvrz/bookstore/internal/config"
	"github.com/snnyvrz/bookstore/internal/model"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	defaultMaxAttempts     = 5
	defaultDelayBetweenTry = 2 * time.Second
)

// Store is an open connection to one of the supported back ends. Exactly
// one of Mongo or SQL is set.
type Store struct {
	Driver string
	Mongo  *mongo.Database
	SQL    *gorm.DB

	mu       sync.Mutex
	migrated bool
}

func Open(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*Store, error) {
	switch cfg.StorageDriver {
	case config.DriverMongo:
		database, err := ConnectMongo(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return &Store{Driver: cfg.StorageDriver, Mongo: database}, nil

	case config.DriverPostgres, config.DriverSQLite:
		gdb, err := ConnectSQL(ctx, cfg, log)
		if err != nil {
			return nil, err
		}

		s := &Store{Driver: cfg.StorageDriver, SQL: gdb}
		l := log.WithField("driver", cfg.StorageDriver)
		if err := s.EnsureSchema(ctx); err != nil {
			l.WithError(err).Error("schema migration failed, will retry once the database answers")
		} else {
			l.Info("database schema up to date")
		}
		return s, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func (s *Store) Ping(ctx context.Context) error {
	if s.Mongo != nil {
		return s.Mongo.Client().Ping(ctx, readpref.Primary())
	}

	sqlDB, err := s.SQL.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}
	return s.EnsureSchema(ctx)
}

// EnsureSchema migrates the SQL schema the first time it succeeds and is a
// no-op afterwards. A failed attempt is retried on the next call.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if s.SQL == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.migrated {
		return nil
	}
	if err := Migrate(s.SQL.WithContext(ctx)); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	s.migrated = true
	return nil
}

// AwaitSchema keeps retrying EnsureSchema until it succeeds or ctx ends,
// so a database that was down at startup is usable once it comes back.
func (s *Store) AwaitSchema(ctx context.Context, every time.Duration, log logrus.FieldLogger) {
	if s.EnsureSchema(ctx) == nil {
		return
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.EnsureSchema(ctx); err != nil {
				log.WithError(err).Warn("schema still not migrated")
				continue
			}
			log.WithField("driver", s.Driver).Info("database schema up to date")
			return
		}
	}
}

func (s *Store) Close(ctx context.Context) error {
	if s.Mongo != nil {
		return s.Mongo.Client().Disconnect(ctx)
	}

	sqlDB, err := s.SQL.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ConnectMongo builds the client and waits for the server to answer a
// ping. The driver connects lazily, so the returned database is usable
// even when every ping failed.
func ConnectMongo(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetTimeout(cfg.StoreTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo client: %w", err)
	}

	ping := func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	}
	if err := retry(ctx, log.WithField("driver", "mongo"), cfg.StoreTimeout, ping); err != nil {
		log.WithError(err).Error("error connecting to MongoDB")
	} else {
		log.WithField("database", cfg.MongoDB).Info("connection to MongoDB successful")
	}

	return client.Database(cfg.MongoDB), nil
}

// ConnectSQL opens Postgres or SQLite through gorm and waits for the
// database to answer. Migrations are left to Store.EnsureSchema.
func ConnectSQL(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	default:
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		TranslateError:       true,
		DisableAutomaticPing: true,
		Logger:               gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.StorageDriver, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}

	l := log.WithField("driver", cfg.StorageDriver)
	if err := retry(ctx, l, cfg.StoreTimeout, sqlDB.PingContext); err != nil {
		l.WithError(err).Error("error connecting to database")
		return gdb, nil
	}

	l.Info("database connection successful")
	return gdb, nil
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.Publisher{},
		&model.Author{},
		&model.Book{},
		&model.Feedback{},
		&model.Inquiry{},
	)
}

func retry(ctx context.Context, log logrus.FieldLogger, timeout time.Duration, ping func(context.Context) error) error {
	var err error
	for attempt := 1; attempt <= defaultMaxAttempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, timeout)
		err = ping(pingCtx)
		cancel()
		if err == nil {
			return nil
		}

		log.WithError(err).Warnf("store not ready (attempt %d/%d)", attempt, defaultMaxAttempts)
		if attempt == defaultMaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(defaultDelayBetweenTry):
		}
	}
	return err
}
