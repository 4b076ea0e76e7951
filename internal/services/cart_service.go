package services

import (
	"context"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

// CartService resolves client-side cart and saved-item lists into products.
type CartService struct {
	products repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(products repositories.ProductRepository) *CartService {
	return &CartService{products: products}
}

// GetProducts returns the products whose IDs are listed, in one query.
// Unknown IDs are ignored and duplicates collapse.
func (s *CartService) GetProducts(ctx context.Context, ids []uint) ([]models.Product, error) {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return s.products.GetByIDs(ctx, unique)
}
