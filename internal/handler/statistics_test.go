package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/snnyvrz/bookstore/internal/model"
	"github.com/snnyvrz/bookstore/internal/repository"
	"github.com/snnyvrz/bookstore/internal/testutil"
)

type fakeStats struct {
	repository.CatalogRepository
	err   error
	limit int
	rows  []model.PublisherPurchase
}

func (f *fakeStats) BookStatistics(ctx context.Context) (model.BookStatistics, error) {
	return model.BookStatistics{}, f.err
}

func (f *fakeStats) PublisherAuthorStatistics(ctx context.Context) (model.PublisherAuthorStatistics, error) {
	return model.PublisherAuthorStatistics{}, f.err
}

func (f *fakeStats) PublisherPurchases(ctx context.Context, limit int) ([]model.PublisherPurchase, error) {
	f.limit = limit
	return f.rows, f.err
}

func TestStatistics_EmptyCatalogIsZero(t *testing.T) {
	router := setupTestRouter(testutil.NewTestDB(t))

	w := doJSON(t, router, http.MethodGet, "/api/book-statistics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Body.String() != `{"totalBooks":0,"availableBooks":0,"purchasedBooks":0}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/publisher-author-statistics", nil)
	if w.Body.String() != `{"totalPublishers":0,"totalAuthors":0}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/publisher-purchases", nil)
	if w.Body.String() != `{"publishers":[],"purchasedCopies":[]}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestStatistics_PublisherPurchasesAsParallelArrays(t *testing.T) {
	stats := &fakeStats{rows: []model.PublisherPurchase{
		{Publisher: "Gamma", PurchasedCopies: 9},
		{Publisher: "Alpha", PurchasedCopies: 5},
	}}
	router := setupTestRouterWithRepos(nil, nil, stats)

	w := doJSON(t, router, http.MethodGet, "/api/publisher-purchases", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	resp := decode[PublisherPurchasesResponse](t, w)
	if len(resp.Publishers) != 2 || resp.Publishers[0] != "Gamma" || resp.PurchasedCopies[1] != 5 {
		t.Errorf("unexpected response %+v", resp)
	}
	if stats.limit != model.TopPublishers {
		t.Errorf("expected limit %d, got %d", model.TopPublishers, stats.limit)
	}
}

func TestStatistics_StorageErrors(t *testing.T) {
	router := setupTestRouterWithRepos(nil, nil, &fakeStats{err: errors.New("db down")})

	for _, path := range []string{
		"/api/book-statistics",
		"/api/publisher-author-statistics",
		"/api/publisher-purchases",
	} {
		if w := doJSON(t, router, http.MethodGet, path, nil); w.Code != http.StatusInternalServerError {
			t.Errorf("%s: expected status 500, got %d", path, w.Code)
		}
	}
}
