package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/snnyvrz/bookstore/internal/repository"
	"github.com/snnyvrz/bookstore/internal/validation"
)

type CatalogHandler struct {
	repo repository.CatalogRepository
	log  logrus.FieldLogger
}

func NewCatalogHandler(repo repository.CatalogRepository, log logrus.FieldLogger) *CatalogHandler {
	return &CatalogHandler{repo: repo, log: log.WithField("component", "catalog")}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.POST("", h.AddBook)
		books.GET("/:id", h.GetBook)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}

	r.POST("/purchase/:id", h.PurchaseBook)
	r.PUT("/publishers/:id", h.RenamePublisher)
	r.PUT("/authors/:id", h.RenameAuthor)
}

// ListBooks godoc
// @Summary      List the catalog
// @Description  Every publisher with its authors and their books
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   Publisher
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books [get]
func (h *CatalogHandler) ListBooks(c *gin.Context) {
	publishers, err := h.repo.ListPublishers(c.Request.Context())
	if err != nil {
		writeInternalError(c, h.log, err,
			"CATALOG_LIST_FAILED",
			"failed to fetch books",
		)
		return
	}

	resp := make([]Publisher, 0, len(publishers))
	for _, p := range publishers {
		resp = append(resp, toPublisher(p))
	}

	c.JSON(http.StatusOK, resp)
}

// AddBook godoc
// @Summary      Add a book
// @Description  Adds a book under the named publisher and author, creating either when missing
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        payload  body      AddBookRequest            true  "Book to add"
// @Success      200      {object}  BookMessageResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books [post]
func (h *CatalogHandler) AddBook(c *gin.Context) {
	var req AddBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if req.BookDetails.PublisherDate.IsZero() {
		writeFieldError(c, "bookDetails.publisherDate", "required", "bookDetails.publisherDate is required")
		return
	}

	book := req.BookDetails.toModel()

	if err := h.repo.AddBook(c.Request.Context(), req.PublisherName, req.AuthorName, &book); err != nil {
		writeInternalError(c, h.log, err,
			"BOOK_CREATE_FAILED",
			"failed to add book",
		)
		return
	}

	h.log.WithFields(logrus.Fields{
		"bookId":    book.ID,
		"publisher": req.PublisherName,
		"author":    req.AuthorName,
	}).Info("book added")

	c.JSON(http.StatusOK, BookMessageResponse{
		Message: "Book added successfully!",
		Book:    toBook(book),
	})
}

// GetBook godoc
// @Summary      Get a book
// @Description  A single book with the names of its publisher and author
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      200  {object}  BookDetailResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [get]
func (h *CatalogHandler) GetBook(c *gin.Context) {
	id, ok := parseID(c, "id", "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	loc, err := h.repo.FindBook(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		writeInternalError(c, h.log, err,
			"BOOK_FETCH_FAILED",
			"failed to fetch book",
		)
		return
	}

	c.JSON(http.StatusOK, BookDetailResponse{
		PublisherID:   loc.PublisherID,
		PublisherName: loc.PublisherName,
		AuthorID:      loc.AuthorID,
		AuthorName:    loc.AuthorName,
		Book:          toBook(loc.Book),
	})
}

// PurchaseBook godoc
// @Summary      Purchase copies of a book
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Book ID (UUID)"
// @Param        payload  body      PurchaseRequest           true  "Quantity"
// @Success      200      {object}  BookMessageResponse
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID, payload or not enough copies"
// @Failure      404      {object}  validation.ErrorResponse  "Book not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /purchase/{id} [post]
func (h *CatalogHandler) PurchaseBook(c *gin.Context) {
	id, ok := parseID(c, "id", "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	var req PurchaseRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book, err := h.repo.PurchaseBook(c.Request.Context(), id, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
		case errors.Is(err, repository.ErrInsufficientStock):
			writeError(c, http.StatusBadRequest,
				"INSUFFICIENT_STOCK",
				"not enough copies available",
			)
		default:
			writeInternalError(c, h.log, err,
				"BOOK_PURCHASE_FAILED",
				"failed to purchase book",
			)
		}
		return
	}

	h.log.WithFields(logrus.Fields{
		"bookId":   id,
		"quantity": req.Quantity,
	}).Info("book purchased")

	c.JSON(http.StatusOK, BookMessageResponse{
		Message: "Book purchased successfully",
		Book:    toBook(*book),
	})
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Partially update the fields of a book
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Book ID (UUID)"
// @Param        payload  body      UpdateBookRequest         true  "Fields to update"
// @Success      200      {object}  BookMessageResponse
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse  "Book not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [put]
func (h *CatalogHandler) UpdateBook(c *gin.Context) {
	id, ok := parseID(c, "id", "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	var req UpdateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if req.PublisherDate != nil && req.PublisherDate.IsZero() {
		writeFieldError(c, "publisherDate", "required", "publisherDate must be a valid date")
		return
	}

	update := req.toModel()
	if update.IsEmpty() {
		writeError(c, http.StatusBadRequest,
			"NO_FIELDS_TO_UPDATE",
			"at least one field must be provided to update",
		)
		return
	}

	book, err := h.repo.UpdateBook(c.Request.Context(), id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		writeInternalError(c, h.log, err,
			"BOOK_UPDATE_FAILED",
			"failed to update book",
		)
		return
	}

	c.JSON(http.StatusOK, BookMessageResponse{
		Message: "Book details updated successfully",
		Book:    toBook(*book),
	})
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Removes the book from its author; the author and publisher are kept
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [delete]
func (h *CatalogHandler) DeleteBook(c *gin.Context) {
	id, ok := parseID(c, "id", "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	if err := h.repo.DeleteBook(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		writeInternalError(c, h.log, err,
			"BOOK_DELETE_FAILED",
			"failed to delete book",
		)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Book deleted successfully"})
}

// RenamePublisher godoc
// @Summary      Rename a publisher
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Publisher ID (UUID)"
// @Param        payload  body      RenamePublisherRequest    true  "New name"
// @Success      200      {object}  Publisher
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse  "Publisher not found"
// @Failure      409      {object}  validation.ErrorResponse  "Name already in use"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /publishers/{id} [put]
func (h *CatalogHandler) RenamePublisher(c *gin.Context) {
	id, ok := parseID(c, "id", "INVALID_PUBLISHER_ID", "invalid publisher id")
	if !ok {
		return
	}

	var req RenamePublisherRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	publisher, err := h.repo.RenamePublisher(c.Request.Context(), id, req.PublisherName)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(c, http.StatusNotFound,
				"PUBLISHER_NOT_FOUND",
				"publisher not found",
			)
		case errors.Is(err, repository.ErrConflict):
			writeError(c, http.StatusConflict,
				"PUBLISHER_NAME_TAKEN",
				"a publisher with this name already exists",
			)
		default:
			writeInternalError(c, h.log, err,
				"PUBLISHER_UPDATE_FAILED",
				"failed to rename publisher",
			)
		}
		return
	}

	c.JSON(http.StatusOK, toPublisher(*publisher))
}

// RenameAuthor godoc
// @Summary      Rename an author
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Author ID (UUID)"
// @Param        payload  body      RenameAuthorRequest       true  "New name"
// @Success      200      {object}  Author
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse  "Author not found"
// @Failure      409      {object}  validation.ErrorResponse  "Name already in use under this publisher"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id} [put]
func (h *CatalogHandler) RenameAuthor(c *gin.Context) {
	id, ok := parseID(c, "id", "INVALID_AUTHOR_ID", "invalid author id")
	if !ok {
		return
	}

	var req RenameAuthorRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	author, err := h.repo.RenameAuthor(c.Request.Context(), id, req.AuthorName)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(c, http.StatusNotFound,
				"AUTHOR_NOT_FOUND",
				"author not found",
			)
		case errors.Is(err, repository.ErrConflict):
			writeError(c, http.StatusConflict,
				"AUTHOR_NAME_TAKEN",
				"an author with this name already exists for the publisher",
			)
		default:
			writeInternalError(c, h.log, err,
				"AUTHOR_UPDATE_FAILED",
				"failed to rename author",
			)
		}
		return
	}

	c.JSON(http.StatusOK, toAuthor(*author))
}
