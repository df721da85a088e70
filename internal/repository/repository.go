// Package repository holds the data-access layer. Every collection has an
// interface consumed by the HTTP handlers plus a MongoDB and a Gorm
// implementation.
package repository

import (
	"context"

	"github.com/snnyvrz/bookstore/internal/model"
)

type FeedbackRepository interface {
	Create(ctx context.Context, f *model.Feedback) error
	List(ctx context.Context) ([]model.Feedback, error)
}

type InquiryRepository interface {
	Create(ctx context.Context, i *model.Inquiry) error
	List(ctx context.Context) ([]model.Inquiry, error)
}

// CatalogRepository manages the publisher -> author -> book tree.
//
// PurchaseBook must decrement stock with a single conditional write so
// that concurrent purchases can never oversell a book.
type CatalogRepository interface {
	ListPublishers(ctx context.Context) ([]model.Publisher, error)
	FindBook(ctx context.Context, id string) (*model.BookLocation, error)
	AddBook(ctx context.Context, publisherName, authorName string, book *model.Book) error
	PurchaseBook(ctx context.Context, id string, quantity int) (*model.Book, error)
	UpdateBook(ctx context.Context, id string, u model.BookUpdate) (*model.Book, error)
	DeleteBook(ctx context.Context, id string) error
	RenamePublisher(ctx context.Context, id, name string) (*model.Publisher, error)
	RenameAuthor(ctx context.Context, id, name string) (*model.Author, error)

	BookStatistics(ctx context.Context) (model.BookStatistics, error)
	PublisherAuthorStatistics(ctx context.Context) (model.PublisherAuthorStatistics, error)
	PublisherPurchases(ctx context.Context, limit int) ([]model.PublisherPurchase, error)
}
