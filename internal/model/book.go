package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID              string    `bson:"_id" gorm:"type:varchar(36);primaryKey"`
	AuthorID        string    `bson:"-" gorm:"type:varchar(36);not null;index"`
	Name            string    `bson:"bookName" gorm:"not null"`
	ImgURL          string    `bson:"imgUrl" gorm:"not null"`
	Description     string    `bson:"description"`
	PublisherDate   time.Time `bson:"publisherDate"`
	TotalCopies     int       `bson:"totalCopies" gorm:"not null"`
	PurchasedCopies int       `bson:"purchasedCopies" gorm:"not null;default:0"`
	Price           float64   `bson:"price" gorm:"not null"`
	CreatedAt       time.Time `bson:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return
}

// Stamp assigns an id and creation time to a book that is about to be
// embedded in a publisher document.
func (b *Book) Stamp(now time.Time) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// BookUpdate carries the fields of a partial book update. Nil fields are
// left untouched.
type BookUpdate struct {
	Name            *string
	ImgURL          *string
	Description     *string
	PublisherDate   *time.Time
	TotalCopies     *int
	PurchasedCopies *int
	Price           *float64
}

func (u BookUpdate) IsEmpty() bool {
	return u.Name == nil &&
		u.ImgURL == nil &&
		u.Description == nil &&
		u.PublisherDate == nil &&
		u.TotalCopies == nil &&
		u.PurchasedCopies == nil &&
		u.Price == nil
}
