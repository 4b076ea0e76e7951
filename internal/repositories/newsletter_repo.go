package repositories

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// NewsLetterRepository defines the interface for newsletter subscription data access.
type NewsLetterRepository interface {
	List(ctx context.Context) ([]models.NewsLetter, error)
	GetByEmail(ctx context.Context, email string) (*models.NewsLetter, error)
	Create(ctx context.Context, subscription *models.NewsLetter) error
	Delete(ctx context.Context, id uint) error
}

// GORMNewsLetterRepository is a GORM implementation of NewsLetterRepository.
type GORMNewsLetterRepository struct {
	db *gorm.DB
}

// NewGORMNewsLetterRepository creates a new instance of GORMNewsLetterRepository.
func NewGORMNewsLetterRepository(db *gorm.DB) *GORMNewsLetterRepository {
	return &GORMNewsLetterRepository{db: db}
}

func (r *GORMNewsLetterRepository) List(ctx context.Context) ([]models.NewsLetter, error) {
	var subscriptions []models.NewsLetter
	if err := r.db.WithContext(ctx).Order("id").Find(&subscriptions).Error; err != nil {
		return nil, fmt.Errorf("failed to list newsletter subscriptions: %w", err)
	}
	return subscriptions, nil
}

func (r *GORMNewsLetterRepository) GetByEmail(ctx context.Context, email string) (*models.NewsLetter, error) {
	var subscription models.NewsLetter
	if err := r.db.WithContext(ctx).First(&subscription, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("subscription for %s not found: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get subscription by email %s: %w", email, err)
	}
	return &subscription, nil
}

func (r *GORMNewsLetterRepository) Create(ctx context.Context, subscription *models.NewsLetter) error {
	if err := r.db.WithContext(ctx).Create(subscription).Error; err != nil {
		return fmt.Errorf("failed to create newsletter subscription: %w", duplicate(err))
	}
	return nil
}

func (r *GORMNewsLetterRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.NewsLetter{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete newsletter subscription: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("subscription with ID %d not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}
