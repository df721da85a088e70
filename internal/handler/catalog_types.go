package handler

import (
	"time"

	"github.com/snnyvrz/bookstore/internal/model"
)

type BookDetailsRequest struct {
	BookName        string      `json:"bookName" binding:"required"`
	ImgURL          string      `json:"imgUrl" binding:"required"`
	Description     string      `json:"description" binding:"required"`
	PublisherDate   *model.Date `json:"publisherDate" binding:"required" swaggertype:"string" example:"2024-05-01"`
	TotalCopies     *int        `json:"totalCopies" binding:"required,min=0"`
	PurchasedCopies *int        `json:"purchasedCopies" binding:"omitempty,min=0"`
	Price           *float64    `json:"price" binding:"required,min=0"`
}

type AddBookRequest struct {
	PublisherName string              `json:"publisherName" binding:"required"`
	AuthorName    string              `json:"authorName" binding:"required"`
	BookDetails   *BookDetailsRequest `json:"bookDetails" binding:"required"`
}

type PurchaseRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type UpdateBookRequest struct {
	BookName        *string     `json:"bookName" binding:"omitempty,min=1"`
	ImgURL          *string     `json:"imgUrl" binding:"omitempty,min=1"`
	Description     *string     `json:"description"`
	PublisherDate   *model.Date `json:"publisherDate" swaggertype:"string" example:"2024-05-01"`
	TotalCopies     *int        `json:"totalCopies" binding:"omitempty,min=0"`
	PurchasedCopies *int        `json:"purchasedCopies" binding:"omitempty,min=0"`
	Price           *float64    `json:"price" binding:"omitempty,min=0"`
}

type RenamePublisherRequest struct {
	PublisherName string `json:"publisherName" binding:"required"`
}

type RenameAuthorRequest struct {
	AuthorName string `json:"authorName" binding:"required"`
}

type Book struct {
	ID              string     `json:"id"`
	BookName        string     `json:"bookName"`
	ImgURL          string     `json:"imgUrl"`
	Description     string     `json:"description"`
	PublisherDate   model.Date `json:"publisherDate" swaggertype:"string" example:"2024-05-01"`
	TotalCopies     int        `json:"totalCopies"`
	PurchasedCopies int        `json:"purchasedCopies"`
	Price           float64    `json:"price"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type Author struct {
	ID         string `json:"id"`
	AuthorName string `json:"authorName"`
	Books      []Book `json:"books"`
}

type Publisher struct {
	ID            string   `json:"id"`
	PublisherName string   `json:"publisherName"`
	Authors       []Author `json:"authors"`
}

type BookMessageResponse struct {
	Message string `json:"message"`
	Book    Book   `json:"book"`
}

type BookDetailResponse struct {
	PublisherID   string `json:"publisherId"`
	PublisherName string `json:"publisherName"`
	AuthorID      string `json:"authorId"`
	AuthorName    string `json:"authorName"`
	Book          Book   `json:"book"`
}

type PublisherPurchasesResponse struct {
	Publishers      []string `json:"publishers"`
	PurchasedCopies []int64  `json:"purchasedCopies"`
}

func (r *BookDetailsRequest) toModel() model.Book {
	b := model.Book{
		Name:          r.BookName,
		ImgURL:        r.ImgURL,
		Description:   r.Description,
		PublisherDate: r.PublisherDate.Time,
		TotalCopies:   *r.TotalCopies,
		Price:         *r.Price,
	}
	if r.PurchasedCopies != nil {
		b.PurchasedCopies = *r.PurchasedCopies
	}
	return b
}

func (r *UpdateBookRequest) toModel() model.BookUpdate {
	u := model.BookUpdate{
		Name:            r.BookName,
		ImgURL:          r.ImgURL,
		Description:     r.Description,
		TotalCopies:     r.TotalCopies,
		PurchasedCopies: r.PurchasedCopies,
		Price:           r.Price,
	}
	if r.PublisherDate != nil {
		t := r.PublisherDate.Time
		u.PublisherDate = &t
	}
	return u
}

func toBook(b model.Book) Book {
	return Book{
		ID:              b.ID,
		BookName:        b.Name,
		ImgURL:          b.ImgURL,
		Description:     b.Description,
		PublisherDate:   model.NewDate(b.PublisherDate),
		TotalCopies:     b.TotalCopies,
		PurchasedCopies: b.PurchasedCopies,
		Price:           b.Price,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func toAuthor(a model.Author) Author {
	books := make([]Book, 0, len(a.Books))
	for _, b := range a.Books {
		books = append(books, toBook(b))
	}
	return Author{
		ID:         a.ID,
		AuthorName: a.Name,
		Books:      books,
	}
}

func toPublisher(p model.Publisher) Publisher {
	authors := make([]Author, 0, len(p.Authors))
	for _, a := range p.Authors {
		authors = append(authors, toAuthor(a))
	}
	return Publisher{
		ID:            p.ID,
		PublisherName: p.Name,
		Authors:       authors,
	}
}

func toPublisherPurchases(rows []model.PublisherPurchase) PublisherPurchasesResponse {
	resp := PublisherPurchasesResponse{
		Publishers:      make([]string, 0, len(rows)),
		PurchasedCopies: make([]int64, 0, len(rows)),
	}
	for _, r := range rows {
		resp.Publishers = append(resp.Publishers, r.Publisher)
		resp.PurchasedCopies = append(resp.PurchasedCopies, r.PurchasedCopies)
	}
	return resp
}
