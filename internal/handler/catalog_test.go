package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/bookstore/internal/model"
	"github.com/snnyvrz/bookstore/internal/repository"
	"github.com/snnyvrz/bookstore/internal/testutil"
	"github.com/snnyvrz/bookstore/internal/validation"
)

func addBookBody(publisher, author, name string, totalCopies int, price float64) map[string]any {
	return map[string]any{
		"publisherName": publisher,
		"authorName":    author,
		"bookDetails": map[string]any{
			"bookName":      name,
			"imgUrl":        "https://example.com/" + name + ".png",
			"description":   "About " + name,
			"publisherDate": "2024-05-01",
			"totalCopies":   totalCopies,
			"price":         price,
		},
	}
}

func TestCatalog_WorkedExampleOverHTTP(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doJSON(t, router, http.MethodPost, "/books", addBookBody("P", "A", "X", 10, 5))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	added := decode[BookMessageResponse](t, w)
	if added.Message != "Book added successfully!" {
		t.Errorf("unexpected message %q", added.Message)
	}
	if added.Book.ID == "" || added.Book.PurchasedCopies != 0 {
		t.Fatalf("expected a new book with no sales, got %+v", added.Book)
	}
	if got := added.Book.PublisherDate.Format("2006-01-02"); got != "2024-05-01" {
		t.Errorf("expected publisherDate 2024-05-01, got %s", got)
	}

	w = doJSON(t, router, http.MethodPost, "/purchase/"+added.Book.ID, PurchaseRequest{Quantity: 3})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	purchased := decode[BookMessageResponse](t, w)
	if purchased.Message != "Book purchased successfully" {
		t.Errorf("unexpected message %q", purchased.Message)
	}
	if purchased.Book.TotalCopies != 7 || purchased.Book.PurchasedCopies != 3 {
		t.Errorf("expected 7/3, got %d/%d", purchased.Book.TotalCopies, purchased.Book.PurchasedCopies)
	}

	w = doJSON(t, router, http.MethodPost, "/purchase/"+added.Book.ID, PurchaseRequest{Quantity: 8})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}
	if resp := decode[validation.ErrorResponse](t, w); resp.Code != "INSUFFICIENT_STOCK" {
		t.Errorf("expected INSUFFICIENT_STOCK, got %q", resp.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/book-statistics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	stats := decode[model.BookStatistics](t, w)
	if stats != (model.BookStatistics{TotalBooks: 1, AvailableBooks: 7, PurchasedBooks: 3}) {
		t.Errorf("unexpected statistics %+v", stats)
	}
}

func TestCatalog_ListBooksReturnsTree(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	for _, body := range []map[string]any{
		addBookBody("P", "A", "X", 1, 1),
		addBookBody("P", "A", "Y", 1, 1),
		addBookBody("P", "B", "Z", 1, 1),
	} {
		if w := doJSON(t, router, http.MethodPost, "/books", body); w.Code != http.StatusOK {
			t.Fatalf("add failed: %d %s", w.Code, w.Body.String())
		}
	}

	w := doJSON(t, router, http.MethodGet, "/books", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	tree := decode[[]Publisher](t, w)
	if len(tree) != 1 || tree[0].PublisherName != "P" {
		t.Fatalf("expected one publisher P, got %+v", tree)
	}
	if len(tree[0].Authors) != 2 {
		t.Fatalf("expected two authors, got %+v", tree[0].Authors)
	}
	if a := tree[0].Authors[0]; a.AuthorName != "A" || len(a.Books) != 2 {
		t.Errorf("expected author A with two books, got %+v", a)
	}
}

func TestAddBook_Validation(t *testing.T) {
	cases := []struct {
		name  string
		body  func() map[string]any
		field string
	}{
		{
			name: "missing publisher",
			body: func() map[string]any {
				b := addBookBody("P", "A", "X", 1, 1)
				delete(b, "publisherName")
				return b
			},
			field: "publisherName",
		},
		{
			name: "missing book details",
			body: func() map[string]any {
				b := addBookBody("P", "A", "X", 1, 1)
				delete(b, "bookDetails")
				return b
			},
			field: "bookDetails",
		},
		{
			name: "negative copies",
			body: func() map[string]any {
				return addBookBody("P", "A", "X", -1, 1)
			},
			field: "bookDetails.totalCopies",
		},
		{
			name: "negative price",
			body: func() map[string]any {
				return addBookBody("P", "A", "X", 1, -0.5)
			},
			field: "bookDetails.price",
		},
		{
			name: "missing copies",
			body: func() map[string]any {
				b := addBookBody("P", "A", "X", 1, 1)
				delete(b["bookDetails"].(map[string]any), "totalCopies")
				return b
			},
			field: "bookDetails.totalCopies",
		},
		{
			name: "empty date",
			body: func() map[string]any {
				b := addBookBody("P", "A", "X", 1, 1)
				b["bookDetails"].(map[string]any)["publisherDate"] = ""
				return b
			},
			field: "bookDetails.publisherDate",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			repo := &fakeCatalogRepo{
				AddBookFn: func(ctx context.Context, p, a string, b *model.Book) error {
					called = true
					return nil
				},
			}
			router := setupTestRouterWithRepos(nil, nil, repo)

			w := doJSON(t, router, http.MethodPost, "/books", tc.body())
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
			}
			if called {
				t.Errorf("expected repository not to be called")
			}

			resp := decode[validation.ErrorResponse](t, w)
			found := false
			for _, fe := range resp.Errors {
				if fe.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected an error on %q, got %+v", tc.field, resp.Errors)
			}
		})
	}
}

func TestAddBook_ZeroCopiesAndPriceAccepted(t *testing.T) {
	var stored model.Book
	repo := &fakeCatalogRepo{
		AddBookFn: func(ctx context.Context, p, a string, b *model.Book) error {
			b.ID = uuid.NewString()
			stored = *b
			return nil
		},
	}
	router := setupTestRouterWithRepos(nil, nil, repo)

	w := doJSON(t, router, http.MethodPost, "/books", addBookBody("P", "A", "Free", 0, 0))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if stored.TotalCopies != 0 || stored.Price != 0 {
		t.Errorf("unexpected stored book %+v", stored)
	}
}

func TestAddBook_StorageError(t *testing.T) {
	repo := &fakeCatalogRepo{
		AddBookFn: func(ctx context.Context, p, a string, b *model.Book) error {
			return errors.New("db down")
		},
	}
	router := setupTestRouterWithRepos(nil, nil, repo)

	w := doJSON(t, router, http.MethodPost, "/books", addBookBody("P", "A", "X", 1, 1))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
}

func TestGetBook(t *testing.T) {
	id := uuid.NewString()
	repo := &fakeCatalogRepo{
		FindBookFn: func(ctx context.Context, got string) (*model.BookLocation, error) {
			if got != id {
				return nil, repository.ErrNotFound
			}
			return &model.BookLocation{
				PublisherID:   "p1",
				PublisherName: "P",
				AuthorID:      "a1",
				AuthorName:    "A",
				Book:          model.Book{ID: id, Name: "X", PublisherDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
	router := setupTestRouterWithRepos(nil, nil, repo)

	w := doJSON(t, router, http.MethodGet, "/books/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	resp := decode[BookDetailResponse](t, w)
	if resp.PublisherName != "P" || resp.AuthorName != "A" || resp.Book.BookName != "X" {
		t.Errorf("unexpected response %+v", resp)
	}

	w = doJSON(t, router, http.MethodGet, "/books/"+uuid.NewString(), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/books/not-a-uuid", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestPurchaseBook_Errors(t *testing.T) {
	id := uuid.NewString()

	cases := []struct {
		name   string
		path   string
		body   any
		err    error
		status int
	}{
		{"malformed id", "/purchase/123", PurchaseRequest{Quantity: 1}, nil, http.StatusBadRequest},
		{"zero quantity", "/purchase/" + id, map[string]int{"quantity": 0}, nil, http.StatusBadRequest},
		{"negative quantity", "/purchase/" + id, map[string]int{"quantity": -2}, nil, http.StatusBadRequest},
		{"not found", "/purchase/" + id, PurchaseRequest{Quantity: 1}, repository.ErrNotFound, http.StatusNotFound},
		{"short", "/purchase/" + id, PurchaseRequest{Quantity: 1}, repository.ErrInsufficientStock, http.StatusBadRequest},
		{"storage", "/purchase/" + id, PurchaseRequest{Quantity: 1}, errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeCatalogRepo{
				PurchaseBookFn: func(ctx context.Context, id string, q int) (*model.Book, error) {
					return nil, tc.err
				},
			}
			router := setupTestRouterWithRepos(nil, nil, repo)

			w := doJSON(t, router, http.MethodPost, tc.path, tc.body)
			if w.Code != tc.status {
				t.Errorf("expected status %d, got %d, body=%s", tc.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestUpdateBook(t *testing.T) {
	id := uuid.NewString()
	var got model.BookUpdate
	repo := &fakeCatalogRepo{
		UpdateBookFn: func(ctx context.Context, bookID string, u model.BookUpdate) (*model.Book, error) {
			if bookID != id {
				return nil, repository.ErrNotFound
			}
			got = u
			b := model.Book{ID: id, Name: *u.Name, TotalCopies: *u.TotalCopies}
			return &b, nil
		},
	}
	router := setupTestRouterWithRepos(nil, nil, repo)

	w := doJSON(t, router, http.MethodPut, "/books/"+id, `{"bookName":"New","totalCopies":9,"publisherName":"ignored"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	resp := decode[BookMessageResponse](t, w)
	if resp.Message != "Book details updated successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Book.BookName != "New" || resp.Book.TotalCopies != 9 {
		t.Errorf("unexpected book %+v", resp.Book)
	}
	if got.Price != nil || got.ImgURL != nil {
		t.Errorf("expected absent fields to stay nil, got %+v", got)
	}

	w = doJSON(t, router, http.MethodPut, "/books/"+id, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for empty update, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPut, "/books/"+id, `{"publisherDate":""}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for empty publisherDate, got %d", w.Code)
	}
	if resp := decode[validation.ErrorResponse](t, w); len(resp.Errors) != 1 || resp.Errors[0].Field != "publisherDate" {
		t.Errorf("expected a publisherDate field error, got %+v", resp)
	}

	w = doJSON(t, router, http.MethodPut, "/books/"+id, `{"price":-1}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for negative price, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPut, "/books/"+uuid.NewString(), `{"price":1}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestDeleteBook(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doJSON(t, router, http.MethodPost, "/books", addBookBody("P", "A", "X", 2, 1))
	if w.Code != http.StatusOK {
		t.Fatalf("add failed: %d %s", w.Code, w.Body.String())
	}
	id := decode[BookMessageResponse](t, w).Book.ID

	w = doJSON(t, router, http.MethodDelete, "/books/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if resp := decode[MessageResponse](t, w); resp.Message != "Book deleted successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}

	w = doJSON(t, router, http.MethodDelete, "/books/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404 on second delete, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/book-statistics", nil)
	if stats := decode[model.BookStatistics](t, w); stats.TotalBooks != 0 {
		t.Errorf("expected deleted book to leave statistics, got %+v", stats)
	}

	w = doJSON(t, router, http.MethodGet, "/books", nil)
	tree := decode[[]Publisher](t, w)
	if len(tree) != 1 || len(tree[0].Authors) != 1 || len(tree[0].Authors[0].Books) != 0 {
		t.Errorf("expected publisher and author to remain empty, got %+v", tree)
	}
}

func TestRenamePublisher(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"ok", nil, http.StatusOK},
		{"not found", repository.ErrNotFound, http.StatusNotFound},
		{"conflict", repository.ErrConflict, http.StatusConflict},
		{"storage", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeCatalogRepo{
				RenamePublisherFn: func(ctx context.Context, id, name string) (*model.Publisher, error) {
					if tc.err != nil {
						return nil, tc.err
					}
					p := model.NewPublisher(name, time.Now())
					p.ID = id
					return &p, nil
				},
			}
			router := setupTestRouterWithRepos(nil, nil, repo)

			w := doJSON(t, router, http.MethodPut, "/publishers/"+uuid.NewString(), RenamePublisherRequest{PublisherName: "New"})
			if w.Code != tc.status {
				t.Fatalf("expected status %d, got %d, body=%s", tc.status, w.Code, w.Body.String())
			}
			if tc.status == http.StatusOK {
				if p := decode[Publisher](t, w); p.PublisherName != "New" {
					t.Errorf("expected renamed publisher, got %+v", p)
				}
			}
		})
	}

	router := setupTestRouterWithRepos(nil, nil, &fakeCatalogRepo{})
	if w := doJSON(t, router, http.MethodPut, "/publishers/"+uuid.NewString(), `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for missing name, got %d", w.Code)
	}
}

func TestRenameAuthor_ConflictOverHTTP(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)
	catalog := repository.NewGormCatalogRepository(db)

	x := testutil.SeedBook(t, catalog, "P", "A", testutil.NewBook("X", 1, 1))
	testutil.SeedBook(t, catalog, "P", "B", testutil.NewBook("Y", 1, 1))

	loc, err := catalog.FindBook(context.Background(), x.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}

	w := doJSON(t, router, http.MethodPut, "/authors/"+loc.AuthorID, RenameAuthorRequest{AuthorName: "B"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d, body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPut, "/authors/"+loc.AuthorID, RenameAuthorRequest{AuthorName: "C"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if a := decode[Author](t, w); a.AuthorName != "C" || len(a.Books) != 1 {
		t.Errorf("unexpected author %+v", a)
	}
}
