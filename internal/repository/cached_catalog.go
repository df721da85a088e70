package repository

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/snnyvrz/bookstore/internal/model"
)

// StatsCache stores computed statistics views. Implementations must treat
// Invalidate as dropping every view at once.
type StatsCache interface {
	Get(ctx context.Context, field string, dst any) (bool, error)
	Set(ctx context.Context, field string, value any) error
	Invalidate(ctx context.Context) error
}

const (
	bookStatsField      = "book-statistics"
	publisherStatsField = "publisher-author-statistics"
)

func purchasesField(limit int) string {
	return fmt.Sprintf("publisher-purchases:%d", limit)
}

// CachedCatalogRepository serves the statistics views from a cache and
// drops the cache after every successful write. Cache failures are logged
// and fall through to the wrapped repository.
//
// A view computed before an invalidation in this process is not written
// back. Writes from other processes sharing the cache, and an invalidation
// landing between that check and the Set, can still leave a stale view
// that lives until the cache TTL expires.
type CachedCatalogRepository struct {
	CatalogRepository
	cache StatsCache
	log   logrus.FieldLogger

	generation atomic.Uint64
}

func NewCachedCatalogRepository(inner CatalogRepository, cache StatsCache, log logrus.FieldLogger) *CachedCatalogRepository {
	return &CachedCatalogRepository{
		CatalogRepository: inner,
		cache:             cache,
		log:               log,
	}
}

func (r *CachedCatalogRepository) AddBook(ctx context.Context, publisherName, authorName string, book *model.Book) error {
	if err := r.CatalogRepository.AddBook(ctx, publisherName, authorName, book); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedCatalogRepository) PurchaseBook(ctx context.Context, id string, quantity int) (*model.Book, error) {
	book, err := r.CatalogRepository.PurchaseBook(ctx, id, quantity)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return book, nil
}

func (r *CachedCatalogRepository) UpdateBook(ctx context.Context, id string, u model.BookUpdate) (*model.Book, error) {
	book, err := r.CatalogRepository.UpdateBook(ctx, id, u)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return book, nil
}

func (r *CachedCatalogRepository) DeleteBook(ctx context.Context, id string) error {
	if err := r.CatalogRepository.DeleteBook(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedCatalogRepository) RenamePublisher(ctx context.Context, id, name string) (*model.Publisher, error) {
	p, err := r.CatalogRepository.RenamePublisher(ctx, id, name)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return p, nil
}

func (r *CachedCatalogRepository) BookStatistics(ctx context.Context) (model.BookStatistics, error) {
	var stats model.BookStatistics
	if r.lookup(ctx, bookStatsField, &stats) {
		return stats, nil
	}

	gen := r.generation.Load()
	stats, err := r.CatalogRepository.BookStatistics(ctx)
	if err != nil {
		return stats, err
	}
	r.store(ctx, gen, bookStatsField, stats)
	return stats, nil
}

func (r *CachedCatalogRepository) PublisherAuthorStatistics(ctx context.Context) (model.PublisherAuthorStatistics, error) {
	var stats model.PublisherAuthorStatistics
	if r.lookup(ctx, publisherStatsField, &stats) {
		return stats, nil
	}

	gen := r.generation.Load()
	stats, err := r.CatalogRepository.PublisherAuthorStatistics(ctx)
	if err != nil {
		return stats, err
	}
	r.store(ctx, gen, publisherStatsField, stats)
	return stats, nil
}

func (r *CachedCatalogRepository) PublisherPurchases(ctx context.Context, limit int) ([]model.PublisherPurchase, error) {
	field := purchasesField(limit)

	var rows []model.PublisherPurchase
	if r.lookup(ctx, field, &rows) {
		return rows, nil
	}

	gen := r.generation.Load()
	rows, err := r.CatalogRepository.PublisherPurchases(ctx, limit)
	if err != nil {
		return nil, err
	}
	r.store(ctx, gen, field, rows)
	return rows, nil
}

func (r *CachedCatalogRepository) lookup(ctx context.Context, field string, dst any) bool {
	hit, err := r.cache.Get(ctx, field, dst)
	if err != nil {
		r.log.WithError(err).WithField("field", field).Warn("stats cache read failed")
		return false
	}
	return hit
}

// store caches value unless an invalidation happened since gen was read.
func (r *CachedCatalogRepository) store(ctx context.Context, gen uint64, field string, value any) {
	if r.generation.Load() != gen {
		return
	}
	if err := r.cache.Set(ctx, field, value); err != nil {
		r.log.WithError(err).WithField("field", field).Warn("stats cache write failed")
	}
}

func (r *CachedCatalogRepository) invalidate(ctx context.Context) {
	r.generation.Add(1)
	if err := r.cache.Invalidate(ctx); err != nil {
		r.log.WithError(err).Warn("stats cache invalidation failed")
	}
}
