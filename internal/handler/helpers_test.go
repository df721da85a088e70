package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookstore/internal/model"
	"github.com/snnyvrz/bookstore/internal/repository"
	"github.com/snnyvrz/bookstore/internal/testutil"
	"gorm.io/gorm"
)

type fakeFeedbackRepo struct {
	CreateFn func(ctx context.Context, f *model.Feedback) error
	ListFn   func(ctx context.Context) ([]model.Feedback, error)
}

func (f *fakeFeedbackRepo) Create(ctx context.Context, fb *model.Feedback) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, fb)
	}
	return nil
}

func (f *fakeFeedbackRepo) List(ctx context.Context) ([]model.Feedback, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return []model.Feedback{}, nil
}

type fakeInquiryRepo struct {
	CreateFn func(ctx context.Context, i *model.Inquiry) error
	ListFn   func(ctx context.Context) ([]model.Inquiry, error)
}

func (f *fakeInquiryRepo) Create(ctx context.Context, i *model.Inquiry) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, i)
	}
	return nil
}

func (f *fakeInquiryRepo) List(ctx context.Context) ([]model.Inquiry, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return []model.Inquiry{}, nil
}

// fakeCatalogRepo embeds the interface so tests only stub what they call;
// anything else panics.
type fakeCatalogRepo struct {
	repository.CatalogRepository

	FindBookFn        func(ctx context.Context, id string) (*model.BookLocation, error)
	AddBookFn         func(ctx context.Context, publisherName, authorName string, b *model.Book) error
	PurchaseBookFn    func(ctx context.Context, id string, quantity int) (*model.Book, error)
	UpdateBookFn      func(ctx context.Context, id string, u model.BookUpdate) (*model.Book, error)
	DeleteBookFn      func(ctx context.Context, id string) error
	RenamePublisherFn func(ctx context.Context, id, name string) (*model.Publisher, error)
	RenameAuthorFn    func(ctx context.Context, id, name string) (*model.Author, error)
	ListPublishersFn  func(ctx context.Context) ([]model.Publisher, error)
}

func (f *fakeCatalogRepo) ListPublishers(ctx context.Context) ([]model.Publisher, error) {
	if f.ListPublishersFn != nil {
		return f.ListPublishersFn(ctx)
	}
	return []model.Publisher{}, nil
}

func (f *fakeCatalogRepo) FindBook(ctx context.Context, id string) (*model.BookLocation, error) {
	if f.FindBookFn != nil {
		return f.FindBookFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCatalogRepo) AddBook(ctx context.Context, publisherName, authorName string, b *model.Book) error {
	if f.AddBookFn != nil {
		return f.AddBookFn(ctx, publisherName, authorName, b)
	}
	return nil
}

func (f *fakeCatalogRepo) PurchaseBook(ctx context.Context, id string, quantity int) (*model.Book, error) {
	if f.PurchaseBookFn != nil {
		return f.PurchaseBookFn(ctx, id, quantity)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCatalogRepo) UpdateBook(ctx context.Context, id string, u model.BookUpdate) (*model.Book, error) {
	if f.UpdateBookFn != nil {
		return f.UpdateBookFn(ctx, id, u)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCatalogRepo) DeleteBook(ctx context.Context, id string) error {
	if f.DeleteBookFn != nil {
		return f.DeleteBookFn(ctx, id)
	}
	return repository.ErrNotFound
}

func (f *fakeCatalogRepo) RenamePublisher(ctx context.Context, id, name string) (*model.Publisher, error) {
	if f.RenamePublisherFn != nil {
		return f.RenamePublisherFn(ctx, id, name)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCatalogRepo) RenameAuthor(ctx context.Context, id, name string) (*model.Author, error) {
	if f.RenameAuthorFn != nil {
		return f.RenameAuthorFn(ctx, id, name)
	}
	return nil, repository.ErrNotFound
}

func setupTestRouterWithRepos(
	feedbackRepo repository.FeedbackRepository,
	inquiryRepo repository.InquiryRepository,
	catalogRepo repository.CatalogRepository,
) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	log := testutil.NewLogger()

	root := r.Group("")
	if feedbackRepo != nil {
		NewFeedbackHandler(feedbackRepo, log).RegisterRoutes(root)
	}
	if inquiryRepo != nil {
		NewInquiryHandler(inquiryRepo, log).RegisterRoutes(root)
	}
	if catalogRepo != nil {
		NewCatalogHandler(catalogRepo, log).RegisterRoutes(root)
		NewStatisticsHandler(catalogRepo, log).RegisterRoutes(root)
	}

	return r
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	return setupTestRouterWithRepos(
		repository.NewGormFeedbackRepository(db),
		repository.NewGormInquiryRepository(db),
		repository.NewGormCatalogRepository(db),
	)
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch b := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(raw)
	}

	req, _ := http.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
	return v
}
