package services

import (
	"context"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/serializers"

	"github.com/go-playground/validator/v10"
)

// ConditionService handles business logic related to product conditions.
type ConditionService struct {
	repo     repositories.ConditionRepository
	media    MediaStore
	validate *validator.Validate
}

// NewConditionService creates a new ConditionService.
func NewConditionService(repo repositories.ConditionRepository, media MediaStore) *ConditionService {
	return &ConditionService{repo: repo, media: media, validate: newValidator()}
}

func (s *ConditionService) GetAllConditions(ctx context.Context) ([]models.Condition, error) {
	return s.repo.List(ctx)
}

func (s *ConditionService) GetConditionByID(ctx context.Context, id uint) (*models.Condition, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ConditionService) CreateCondition(ctx context.Context, in *serializers.ConditionInput) (*models.Condition, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}
	condition := &models.Condition{Name: in.Name}
	if err := s.repo.Create(ctx, condition); err != nil {
		return nil, err
	}
	return condition, nil
}

func (s *ConditionService) UpdateCondition(ctx context.Context, id uint, in *serializers.ConditionInput) (*models.Condition, error) {
	condition, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}
	condition.Name = in.Name
	if err := s.repo.Update(ctx, condition); err != nil {
		return nil, err
	}
	return condition, nil
}

// DeleteCondition deletes a condition and the products that use it.
func (s *ConditionService) DeleteCondition(ctx context.Context, id uint) error {
	paths, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	removeMedia(s.media, paths)
	return nil
}
