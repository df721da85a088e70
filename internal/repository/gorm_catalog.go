package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/snnyvrz/bookstore/internal/model"
	"gorm.io/gorm"
)

// GormCatalogRepository stores the catalog tree relationally: one table per
// level joined by foreign keys. The database must be opened with
// TranslateError so unique violations surface as gorm.ErrDuplicatedKey.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func orderByCreated(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".created_at ASC")
	}
}

func (r *GormCatalogRepository) ListPublishers(ctx context.Context) ([]model.Publisher, error) {
	publishers := []model.Publisher{}
	if err := r.db.WithContext(ctx).
		Preload("Authors", orderByCreated("authors")).
		Preload("Authors.Books", orderByCreated("books")).
		Order("publishers.created_at ASC").
		Find(&publishers).Error; err != nil {

		return nil, fmt.Errorf("list publishers: %w", err)
	}
	return publishers, nil
}

func (r *GormCatalogRepository) FindBook(ctx context.Context, id string) (*model.BookLocation, error) {
	db := r.db.WithContext(ctx)

	var book model.Book
	if err := db.First(&book, "id = ?", id).Error; err != nil {
		return nil, translate(err, "find book")
	}

	var author model.Author
	if err := db.First(&author, "id = ?", book.AuthorID).Error; err != nil {
		return nil, translate(err, "find author")
	}

	var publisher model.Publisher
	if err := db.First(&publisher, "id = ?", author.PublisherID).Error; err != nil {
		return nil, translate(err, "find publisher")
	}

	return &model.BookLocation{
		PublisherID:   publisher.ID,
		PublisherName: publisher.Name,
		AuthorID:      author.ID,
		AuthorName:    author.Name,
		Book:          book,
	}, nil
}

// AddBook appends book under publisherName/authorName, creating either
// owner when it does not exist yet. A concurrent writer creating the same
// owner makes the first attempt fail on the unique index; the second
// attempt then finds it.
func (r *GormCatalogRepository) AddBook(ctx context.Context, publisherName, authorName string, book *model.Book) error {
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			publisher, err := findOrCreatePublisher(tx, publisherName)
			if err != nil {
				return err
			}

			author, err := findOrCreateAuthor(tx, publisher.ID, authorName)
			if err != nil {
				return err
			}

			book.AuthorID = author.ID
			return tx.Create(book).Error
		})
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		book.ID = ""
	}

	if err != nil {
		return fmt.Errorf("add book: %w", err)
	}
	return nil
}

func findOrCreatePublisher(tx *gorm.DB, name string) (*model.Publisher, error) {
	var publisher model.Publisher
	if err := tx.Where(model.Publisher{Name: name}).FirstOrCreate(&publisher).Error; err != nil {
		return nil, err
	}
	return &publisher, nil
}

func findOrCreateAuthor(tx *gorm.DB, publisherID, name string) (*model.Author, error) {
	var author model.Author
	if err := tx.Where(model.Author{PublisherID: publisherID, Name: name}).FirstOrCreate(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *GormCatalogRepository) PurchaseBook(ctx context.Context, id string, quantity int) (*model.Book, error) {
	var book model.Book

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Book{}).
			Where("id = ? AND total_copies >= ?", id, quantity).
			Updates(map[string]any{
				"total_copies":     gorm.Expr("total_copies - ?", quantity),
				"purchased_copies": gorm.Expr("purchased_copies + ?", quantity),
			})
		if res.Error != nil {
			return res.Error
		}

		if err := tx.First(&book, "id = ?", id).Error; err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}
		return nil
	})
	if err != nil {
		return nil, translate(err, "purchase book")
	}

	return &book, nil
}

func (r *GormCatalogRepository) UpdateBook(ctx context.Context, id string, u model.BookUpdate) (*model.Book, error) {
	var book model.Book

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&book, "id = ?", id).Error; err != nil {
			return err
		}
		if u.IsEmpty() {
			return nil
		}

		if err := tx.Model(&book).Updates(bookColumns(u)).Error; err != nil {
			return err
		}
		return tx.First(&book, "id = ?", id).Error
	})
	if err != nil {
		return nil, translate(err, "update book")
	}

	return &book, nil
}

func bookColumns(u model.BookUpdate) map[string]any {
	cols := map[string]any{}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.ImgURL != nil {
		cols["img_url"] = *u.ImgURL
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.PublisherDate != nil {
		cols["publisher_date"] = *u.PublisherDate
	}
	if u.TotalCopies != nil {
		cols["total_copies"] = *u.TotalCopies
	}
	if u.PurchasedCopies != nil {
		cols["purchased_copies"] = *u.PurchasedCopies
	}
	if u.Price != nil {
		cols["price"] = *u.Price
	}
	return cols
}

func (r *GormCatalogRepository) DeleteBook(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Book{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormCatalogRepository) RenamePublisher(ctx context.Context, id, name string) (*model.Publisher, error) {
	db := r.db.WithContext(ctx)

	result := db.Model(&model.Publisher{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return nil, translate(result.Error, "rename publisher")
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var publisher model.Publisher
	if err := db.
		Preload("Authors", orderByCreated("authors")).
		Preload("Authors.Books", orderByCreated("books")).
		First(&publisher, "id = ?", id).Error; err != nil {

		return nil, translate(err, "load publisher")
	}
	return &publisher, nil
}

func (r *GormCatalogRepository) RenameAuthor(ctx context.Context, id, name string) (*model.Author, error) {
	db := r.db.WithContext(ctx)

	result := db.Model(&model.Author{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return nil, translate(result.Error, "rename author")
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var author model.Author
	if err := db.Preload("Books", orderByCreated("books")).First(&author, "id = ?", id).Error; err != nil {
		return nil, translate(err, "load author")
	}
	return &author, nil
}

func (r *GormCatalogRepository) BookStatistics(ctx context.Context) (model.BookStatistics, error) {
	var stats model.BookStatistics
	err := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Select("COUNT(*) AS total_books, " +
			"COALESCE(SUM(total_copies), 0) AS available_books, " +
			"COALESCE(SUM(purchased_copies), 0) AS purchased_books").
		Scan(&stats).Error
	if err != nil {
		return model.BookStatistics{}, fmt.Errorf("book statistics: %w", err)
	}
	return stats, nil
}

func (r *GormCatalogRepository) PublisherAuthorStatistics(ctx context.Context) (model.PublisherAuthorStatistics, error) {
	var stats model.PublisherAuthorStatistics
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Publisher{}).Count(&stats.TotalPublishers).Error; err != nil {
		return model.PublisherAuthorStatistics{}, fmt.Errorf("count publishers: %w", err)
	}
	if err := db.Model(&model.Author{}).Count(&stats.TotalAuthors).Error; err != nil {
		return model.PublisherAuthorStatistics{}, fmt.Errorf("count authors: %w", err)
	}
	return stats, nil
}

func (r *GormCatalogRepository) PublisherPurchases(ctx context.Context, limit int) ([]model.PublisherPurchase, error) {
	rows := []model.PublisherPurchase{}
	err := r.db.WithContext(ctx).
		Table("books").
		Select("publishers.name AS publisher, COALESCE(SUM(books.purchased_copies), 0) AS purchased_copies").
		Joins("JOIN authors ON authors.id = books.author_id").
		Joins("JOIN publishers ON publishers.id = authors.publisher_id").
		Group("publishers.id, publishers.name").
		Order("purchased_copies DESC, publishers.name ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("publisher purchases: %w", err)
	}
	return rows, nil
}

// translate maps gorm's sentinel errors onto the repository's own.
func translate(err error, op string) error {
	switch {
	case errors.Is(err, ErrInsufficientStock):
		return ErrInsufficientStock
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
