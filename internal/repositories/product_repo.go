package repositories

import (
	"context"

	"catalog/internal/models"
)

// ProductRepository defines the interface for product data access.
// Reads return products with Category, Condition and Album.Images loaded.
type ProductRepository interface {
	List(ctx context.Context, search string) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Product, error)
	ListByCategories(ctx context.Context, categoryIDs []uint) ([]models.Product, error)
	// Create inserts the product and its album in one transaction.
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	// Delete removes the product with its album, images and orders and
	// returns the media paths of the removed images.
	Delete(ctx context.Context, id uint) ([]string, error)
}
