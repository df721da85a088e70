package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/snnyvrz/bookstore/internal/config"
	"github.com/snnyvrz/bookstore/internal/repository"
	"github.com/snnyvrz/bookstore/internal/server"
	"github.com/snnyvrz/bookstore/internal/testutil"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		StorageDriver: config.DriverSQLite,
		SQLitePath:    filepath.Join(t.TempDir(), "bookstore.db"),
		StoreTimeout:  5 * time.Second,
	}
}

func TestNew_SQLiteWiresGormRepositories(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, sqliteConfig(t), testutil.NewLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = a.Close(ctx) })

	if _, ok := a.Catalog.(*repository.GormCatalogRepository); !ok {
		t.Errorf("expected gorm catalog without redis, got %T", a.Catalog)
	}
	if err := a.Store.Ping(ctx); err != nil {
		t.Errorf("expected store to answer, got %v", err)
	}
}

func TestNew_RedisWrapsCatalog(t *testing.T) {
	ctx := context.Background()
	cfg := sqliteConfig(t)
	cfg.RedisAddr = "127.0.0.1:0"
	cfg.StatsCacheTTL = time.Minute

	a, err := New(ctx, cfg, testutil.NewLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = a.Close(ctx) })

	if _, ok := a.Catalog.(*repository.CachedCatalogRepository); !ok {
		t.Errorf("expected cached catalog, got %T", a.Catalog)
	}
}

func TestSeed_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, sqliteConfig(t), testutil.NewLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = a.Close(ctx) })

	n, err := Seed(ctx, a.Catalog, a.Log)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if n != len(sampleCatalog) {
		t.Errorf("expected %d books, got %d", len(sampleCatalog), n)
	}

	again, err := Seed(ctx, a.Catalog, a.Log)
	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if again != 0 {
		t.Errorf("expected second seed to add nothing, added %d", again)
	}

	stats, err := a.Catalog.PublisherAuthorStatistics(ctx)
	if err != nil {
		t.Fatalf("statistics failed: %v", err)
	}
	if stats.TotalPublishers != 2 || stats.TotalAuthors != 3 {
		t.Errorf("expected 2 publishers and 3 authors, got %+v", stats)
	}

	books, err := a.Catalog.BookStatistics(ctx)
	if err != nil {
		t.Fatalf("statistics failed: %v", err)
	}
	if books.TotalBooks != 25+12+18+10 {
		t.Errorf("expected each sample book once, got %+v", books)
	}
}

func TestParseServices(t *testing.T) {
	all, err := ParseServices("")
	if err != nil || len(all) != len(server.AllServices) {
		t.Fatalf("expected every service, got %v, %v", all, err)
	}

	some, err := ParseServices(" Catalog, inquiry ,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !some[server.ServiceCatalog] || !some[server.ServiceInquiry] || some[server.ServiceFeedback] {
		t.Errorf("unexpected selection %v", some)
	}

	if _, err := ParseServices("catalog,billing"); err == nil {
		t.Errorf("expected error for unknown service")
	}
}

func TestDeps_OnlyEnabledServices(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, sqliteConfig(t), testutil.NewLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = a.Close(ctx) })

	d := a.Deps(map[string]bool{server.ServiceCatalog: true}, nil, time.Now(), "test")
	if d.Catalog == nil || d.Feedback != nil || d.Inquiry != nil {
		t.Errorf("expected catalog only, got %+v", d)
	}
	if d.Driver != config.DriverSQLite {
		t.Errorf("expected sqlite driver, got %q", d.Driver)
	}
}
