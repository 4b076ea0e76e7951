package services

import (
	"context"
	"errors"
	"strings"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/serializers"

	"github.com/go-playground/validator/v10"
)

const duplicateEmailMessage = "newsletter with this email already exists."

// NewsLetterService manages newsletter subscriptions.
type NewsLetterService struct {
	repo     repositories.NewsLetterRepository
	events   EventPublisher
	validate *validator.Validate
}

// NewNewsLetterService creates a new NewsLetterService. events may be nil.
func NewNewsLetterService(repo repositories.NewsLetterRepository, events EventPublisher) *NewsLetterService {
	return &NewsLetterService{repo: repo, events: events, validate: newValidator()}
}

// GetAllSubscriptions lists every subscription.
func (s *NewsLetterService) GetAllSubscriptions(ctx context.Context) ([]models.NewsLetter, error) {
	return s.repo.List(ctx)
}

// Subscribe stores a new subscription. Emails are compared case-insensitively.
func (s *NewsLetterService) Subscribe(ctx context.Context, in *serializers.NewsLetterInput) (*models.NewsLetter, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, fieldError("email", duplicateEmailMessage)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	subscription := &models.NewsLetter{Email: in.Email}
	if err := s.repo.Create(ctx, subscription); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fieldError("email", duplicateEmailMessage)
		}
		return nil, err
	}
	publish(s.events, "newsletter.subscribed", map[string]any{"id": subscription.ID, "email": subscription.Email})
	return subscription, nil
}

// Unsubscribe deletes a subscription by its ID.
func (s *NewsLetterService) Unsubscribe(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
