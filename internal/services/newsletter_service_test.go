package services_test

import (
	"context"
	"fmt"
	"testing"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/serializers"
	"catalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockNewsLetterRepository is a mock implementation of repositories.NewsLetterRepository
type MockNewsLetterRepository struct {
	mock.Mock
}

func (m *MockNewsLetterRepository) List(ctx context.Context) ([]models.NewsLetter, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.NewsLetter), args.Error(1)
}

func (m *MockNewsLetterRepository) GetByEmail(ctx context.Context, email string) (*models.NewsLetter, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NewsLetter), args.Error(1)
}

func (m *MockNewsLetterRepository) Create(ctx context.Context, subscription *models.NewsLetter) error {
	args := m.Called(ctx, subscription)
	return args.Error(0)
}

func (m *MockNewsLetterRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestNewsLetterService_Subscribe(t *testing.T) {
	repo := new(MockNewsLetterRepository)
	events := new(MockEventPublisher)
	service := services.NewNewsLetterService(repo, events)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "reader@example.com").Return(nil, notFound("newsletter")).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(n *models.NewsLetter) bool {
		return n.Email == "reader@example.com"
	})).Return(nil).Once()
	events.On("Publish", "newsletter.subscribed", mock.Anything).Return(nil).Once()

	subscription, err := service.Subscribe(ctx, &serializers.NewsLetterInput{Email: "  Reader@Example.com "})

	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", subscription.Email)
	repo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestNewsLetterService_Subscribe_Duplicate(t *testing.T) {
	repo := new(MockNewsLetterRepository)
	service := services.NewNewsLetterService(repo, nil)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "reader@example.com").Return(&models.NewsLetter{ID: 1, Email: "reader@example.com"}, nil).Once()

	_, err := service.Subscribe(ctx, &serializers.NewsLetterInput{Email: "reader@example.com"})

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "newsletter with this email already exists.", verr.Fields["email"])
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNewsLetterService_Subscribe_InvalidEmail(t *testing.T) {
	repo := new(MockNewsLetterRepository)
	service := services.NewNewsLetterService(repo, nil)

	_, err := service.Subscribe(context.Background(), &serializers.NewsLetterInput{Email: "not-an-email"})

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Enter a valid email address.", verr.Fields["email"])
	repo.AssertExpectations(t)
}

func TestNewsLetterService_Subscribe_ConcurrentDuplicate(t *testing.T) {
	repo := new(MockNewsLetterRepository)
	service := services.NewNewsLetterService(repo, nil)
	ctx := context.Background()

	// Another request inserted the same email between lookup and insert
	repo.On("GetByEmail", ctx, "reader@example.com").Return(nil, notFound("newsletter")).Once()
	repo.On("Create", ctx, mock.AnythingOfType("*models.NewsLetter")).
		Return(fmt.Errorf("failed to create newsletter subscription: %w", repositories.ErrDuplicate)).Once()

	_, err := service.Subscribe(ctx, &serializers.NewsLetterInput{Email: "reader@example.com"})

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "newsletter with this email already exists.", verr.Fields["email"])
	repo.AssertExpectations(t)
}
