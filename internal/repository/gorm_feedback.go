package repository

import (
	"context"
	"fmt"

	"github.com/snnyvrz/bookstore/internal/model"
	"gorm.io/gorm"
)

type GormFeedbackRepository struct {
	db *gorm.DB
}

func NewGormFeedbackRepository(db *gorm.DB) *GormFeedbackRepository {
	return &GormFeedbackRepository{db: db}
}

func (r *GormFeedbackRepository) Create(ctx context.Context, f *model.Feedback) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

func (r *GormFeedbackRepository) List(ctx context.Context) ([]model.Feedback, error) {
	feedback := []model.Feedback{}
	if err := r.db.WithContext(ctx).
		Order("submitted_on ASC").
		Find(&feedback).Error; err != nil {

		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return feedback, nil
}
