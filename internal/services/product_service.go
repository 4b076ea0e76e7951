package services

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/serializers"

	"github.com/go-playground/validator/v10"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo       repositories.ProductRepository
	categories repositories.CategoryRepository
	conditions repositories.ConditionRepository
	media      MediaStore
	events     EventPublisher
	validate   *validator.Validate
}

// NewProductService creates a new ProductService. media and events may be nil.
func NewProductService(
	repo repositories.ProductRepository,
	categories repositories.CategoryRepository,
	conditions repositories.ConditionRepository,
	media MediaStore,
	events EventPublisher,
) *ProductService {
	return &ProductService{
		repo:       repo,
		categories: categories,
		conditions: conditions,
		media:      media,
		events:     events,
		validate:   newValidator(),
	}
}

// ListProducts retrieves all products, filtered by name when search is not empty.
func (s *ProductService) ListProducts(ctx context.Context, search string) ([]models.Product, error) {
	return s.repo.List(ctx, search)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct validates the input and stores a new product with an empty album.
func (s *ProductService) CreateProduct(ctx context.Context, in *serializers.ProductInput) (*models.Product, error) {
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}

	product := &models.Product{}
	in.Apply(product)
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	publish(s.events, "product.created", map[string]any{"id": product.ID, "name": product.Name})
	return s.repo.GetByID(ctx, product.ID)
}

// UpdateProduct replaces every writable field of an existing product.
// The stored product is left untouched when the input is invalid.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, in *serializers.ProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}

	in.Apply(product)
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// DeleteProduct deletes a product with its album, images and orders.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	paths, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	removeMedia(s.media, paths)
	publish(s.events, "product.deleted", map[string]any{"id": id})
	return nil
}

// check validates the input and that the referenced category and condition exist.
func (s *ProductService) check(ctx context.Context, in *serializers.ProductInput) error {
	if err := validateStruct(s.validate, in); err != nil {
		return err
	}

	fields := map[string]string{}
	if _, err := s.categories.GetByID(ctx, *in.Category); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		fields["category"] = invalidPK(*in.Category)
	}
	if _, err := s.conditions.GetByID(ctx, *in.Condition); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		fields["condition"] = invalidPK(*in.Condition)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func invalidPK(id uint) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
}
