package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Author struct {
	ID          string    `bson:"_id" gorm:"type:varchar(36);primaryKey"`
	PublisherID string    `bson:"-" gorm:"type:varchar(36);not null;uniqueIndex:idx_authors_publisher_name"`
	Name        string    `bson:"authorName" gorm:"not null;uniqueIndex:idx_authors_publisher_name"`
	Books       []Book    `bson:"books" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `bson:"createdAt"`
}

func (a *Author) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return
}

// NewAuthor builds an author with an empty book list, ready to be pushed
// into a publisher document.
func NewAuthor(name string, now time.Time) Author {
	return Author{
		ID:        uuid.NewString(),
		Name:      name,
		Books:     []Book{},
		CreatedAt: now,
	}
}

func (a *Author) FindBook(id string) *Book {
	for i := range a.Books {
		if a.Books[i].ID == id {
			return &a.Books[i]
		}
	}
	return nil
}
