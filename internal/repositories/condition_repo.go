package repositories

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// ConditionRepository defines the interface for condition data access.
type ConditionRepository interface {
	List(ctx context.Context) ([]models.Condition, error)
	GetByID(ctx context.Context, id uint) (*models.Condition, error)
	Create(ctx context.Context, condition *models.Condition) error
	Update(ctx context.Context, condition *models.Condition) error
	Delete(ctx context.Context, id uint) ([]string, error)
}

// GORMConditionRepository is a GORM implementation of ConditionRepository.
type GORMConditionRepository struct {
	db *gorm.DB
}

// NewGORMConditionRepository creates a new instance of GORMConditionRepository.
func NewGORMConditionRepository(db *gorm.DB) *GORMConditionRepository {
	return &GORMConditionRepository{db: db}
}

func (r *GORMConditionRepository) List(ctx context.Context) ([]models.Condition, error) {
	var conditions []models.Condition
	if err := r.db.WithContext(ctx).Order("id").Find(&conditions).Error; err != nil {
		return nil, fmt.Errorf("failed to list conditions: %w", err)
	}
	return conditions, nil
}

func (r *GORMConditionRepository) GetByID(ctx context.Context, id uint) (*models.Condition, error) {
	var condition models.Condition
	if err := r.db.WithContext(ctx).First(&condition, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("condition with ID %d not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get condition by ID %d: %w", id, err)
	}
	return &condition, nil
}

func (r *GORMConditionRepository) Create(ctx context.Context, condition *models.Condition) error {
	if err := r.db.WithContext(ctx).Create(condition).Error; err != nil {
		return fmt.Errorf("failed to create condition: %w", err)
	}
	return nil
}

func (r *GORMConditionRepository) Update(ctx context.Context, condition *models.Condition) error {
	res := r.db.WithContext(ctx).Model(&models.Condition{ID: condition.ID}).Update("name", condition.Name)
	if res.Error != nil {
		return fmt.Errorf("failed to update condition: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("condition with ID %d not found for update: %w", condition.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a condition and the products using it.
func (r *GORMConditionRepository) Delete(ctx context.Context, id uint) ([]string, error) {
	var paths []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		paths, _, err = deleteProducts(tx, "condition_id = ?", id)
		if err != nil {
			return err
		}
		res := tx.Delete(&models.Condition{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("condition with ID %d not found for deletion: %w", id, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete condition: %w", err)
	}
	return paths, nil
}
