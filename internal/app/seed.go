package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snnyvrz/bookstore/internal/model"
	"github.com/snnyvrz/bookstore/internal/repository"
)

type seedEntry struct {
	publisher string
	author    string
	book      model.Book
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var sampleCatalog = []seedEntry{
	{"Penguin Classics", "Jane Austen", model.Book{
		Name:          "Pride and Prejudice",
		ImgURL:        "https://covers.openlibrary.org/b/isbn/9780141439518-L.jpg",
		Description:   "A novel of manners set in rural England.",
		PublisherDate: date(2002, time.December, 31),
		TotalCopies:   25,
		Price:         9.99,
	}},
	{"Penguin Classics", "Jane Austen", model.Book{
		Name:          "Emma",
		ImgURL:        "https://covers.openlibrary.org/b/isbn/9780141439587-L.jpg",
		Description:   "A young woman's misguided matchmaking.",
		PublisherDate: date(2003, time.May, 1),
		TotalCopies:   12,
		Price:         8.5,
	}},
	{"Penguin Classics", "Mary Shelley", model.Book{
		Name:          "Frankenstein",
		ImgURL:        "https://covers.openlibrary.org/b/isbn/9780141439471-L.jpg",
		Description:   "A scientist and the creature he brings to life.",
		PublisherDate: date(2003, time.January, 28),
		TotalCopies:   18,
		Price:         7.99,
	}},
	{"Vintage", "Toni Morrison", model.Book{
		Name:          "Beloved",
		ImgURL:        "https://covers.openlibrary.org/b/isbn/9781400033416-L.jpg",
		Description:   "A former slave haunted by her past.",
		PublisherDate: date(2004, time.June, 8),
		TotalCopies:   10,
		Price:         15,
	}},
}

// Seed adds the sample catalog through the repository, so publishers and
// authors are found or created the same way the API does it. Books already
// present under the same publisher and author are skipped, so running it
// again adds nothing.
func Seed(ctx context.Context, repo repository.CatalogRepository, log logrus.FieldLogger) (int, error) {
	publishers, err := repo.ListPublishers(ctx)
	if err != nil {
		return 0, err
	}

	existing := map[[3]string]bool{}
	for _, p := range publishers {
		for _, a := range p.Authors {
			for _, b := range a.Books {
				existing[[3]string{p.Name, a.Name, b.Name}] = true
			}
		}
	}

	added := 0
	for _, e := range sampleCatalog {
		if existing[[3]string{e.publisher, e.author, e.book.Name}] {
			log.WithField("book", e.book.Name).Debug("already seeded")
			continue
		}

		book := e.book
		if err := repo.AddBook(ctx, e.publisher, e.author, &book); err != nil {
			return added, err
		}
		added++
		log.WithFields(logrus.Fields{
			"publisher": e.publisher,
			"author":    e.author,
			"bookId":    book.ID,
		}).Info("seeded book")
	}
	return added, nil
}
