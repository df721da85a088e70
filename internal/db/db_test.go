package db_test

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snnyvrz/bookstore/internal/config"
	"github.com/snnyvrz/bookstore/internal/db"
	"github.com/snnyvrz/bookstore/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openUnmigrated(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

// failWhile makes every statement gorm executes fail as long as down is set.
func failWhile(t *testing.T, gdb *gorm.DB, down *atomic.Bool) {
	t.Helper()
	err := gdb.Callback().Raw().Before("gorm:raw").Register("test:outage", func(tx *gorm.DB) {
		if down.Load() {
			_ = tx.AddError(errors.New("connection refused"))
		}
	})
	if err != nil {
		t.Fatalf("failed to register callback: %v", err)
	}
}

func TestStorePing_MigratesSchema(t *testing.T) {
	gdb := openUnmigrated(t)
	s := &db.Store{Driver: config.DriverSQLite, SQL: gdb}

	if gdb.Migrator().HasTable(&model.Book{}) {
		t.Fatalf("expected a fresh database without tables")
	}

	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("expected ping to succeed, got %v", err)
	}
	for _, m := range []any{&model.Publisher{}, &model.Author{}, &model.Book{}, &model.Feedback{}, &model.Inquiry{}} {
		if !gdb.Migrator().HasTable(m) {
			t.Errorf("expected table for %T after ping", m)
		}
	}
}

func TestStoreEnsureSchema_RetriesAfterOutage(t *testing.T) {
	ctx := context.Background()
	gdb := openUnmigrated(t)

	var down atomic.Bool
	down.Store(true)
	failWhile(t, gdb, &down)

	s := &db.Store{Driver: config.DriverSQLite, SQL: gdb}

	if err := s.EnsureSchema(ctx); err == nil {
		t.Fatalf("expected migration to fail while the database is down")
	}
	if err := s.Ping(ctx); err == nil {
		t.Fatalf("expected ping to report the missing schema")
	}
	if gdb.Migrator().HasTable(&model.Book{}) {
		t.Fatalf("expected no tables while the database is down")
	}

	down.Store(false)

	if err := s.EnsureSchema(ctx); err != nil {
		t.Fatalf("expected migration to succeed once the database answers, got %v", err)
	}
	if !gdb.Migrator().HasTable(&model.Book{}) {
		t.Errorf("expected books table after recovery")
	}
}

func TestStoreAwaitSchema_MigratesWhenDatabaseReturns(t *testing.T) {
	gdb := openUnmigrated(t)

	var down atomic.Bool
	down.Store(true)
	failWhile(t, gdb, &down)

	s := &db.Store{Driver: config.DriverSQLite, SQL: gdb}

	log := logrus.New()
	log.SetOutput(io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		time.Sleep(50 * time.Millisecond)
		down.Store(false)
	}()

	s.AwaitSchema(ctx, 10*time.Millisecond, log)

	if ctx.Err() != nil {
		t.Fatalf("expected schema to be migrated before the deadline")
	}
	if !gdb.Migrator().HasTable(&model.Book{}) {
		t.Errorf("expected books table after the database returned")
	}
}
