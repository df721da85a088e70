package repository

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrInsufficientStock = errors.New("not enough copies available")
	ErrConflict          = errors.New("name already in use")
)
