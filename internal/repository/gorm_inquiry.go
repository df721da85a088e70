package repository

import (
	"context"
	"fmt"

	"github.com/snnyvrz/bookstore/internal/model"
	"gorm.io/gorm"
)

type GormInquiryRepository struct {
	db *gorm.DB
}

func NewGormInquiryRepository(db *gorm.DB) *GormInquiryRepository {
	return &GormInquiryRepository{db: db}
}

func (r *GormInquiryRepository) Create(ctx context.Context, i *model.Inquiry) error {
	if err := r.db.WithContext(ctx).Create(i).Error; err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

func (r *GormInquiryRepository) List(ctx context.Context) ([]model.Inquiry, error) {
	inquiries := []model.Inquiry{}
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&inquiries).Error; err != nil {

		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return inquiries, nil
}
