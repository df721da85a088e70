package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Publisher is the aggregate root of the catalog. In the document store a
// publisher and its whole author/book subtree live in one document.
type Publisher struct {
	ID        string    `bson:"_id" gorm:"type:varchar(36);primaryKey"`
	Name      string    `bson:"publisherName" gorm:"not null;uniqueIndex"`
	Authors   []Author  `bson:"authors" gorm:"foreignKey:PublisherID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (p *Publisher) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return
}

func NewPublisher(name string, now time.Time) Publisher {
	return Publisher{
		ID:        uuid.NewString(),
		Name:      name,
		Authors:   []Author{},
		CreatedAt: now,
	}
}

// FindAuthor returns the author with exactly the given name, or nil.
func (p *Publisher) FindAuthor(name string) *Author {
	for i := range p.Authors {
		if p.Authors[i].Name == name {
			return &p.Authors[i]
		}
	}
	return nil
}

func (p *Publisher) FindAuthorByID(id string) *Author {
	for i := range p.Authors {
		if p.Authors[i].ID == id {
			return &p.Authors[i]
		}
	}
	return nil
}

// LocateBook walks the subtree and returns the book with the given id
// together with its owning author.
func (p *Publisher) LocateBook(id string) (*Author, *Book, bool) {
	for i := range p.Authors {
		if b := p.Authors[i].FindBook(id); b != nil {
			return &p.Authors[i], b, true
		}
	}
	return nil, nil, false
}

// BookLocation is a book together with the names of its owners.
type BookLocation struct {
	PublisherID   string
	PublisherName string
	AuthorID      string
	AuthorName    string
	Book          Book
}
