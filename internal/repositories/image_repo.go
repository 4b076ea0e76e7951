package repositories

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// ImageRepository defines the interface for album image data access.
type ImageRepository interface {
	AlbumByProduct(ctx context.Context, productID uint) (*models.ImageAlbum, error)
	Create(ctx context.Context, image *models.Image) error
	GetByID(ctx context.Context, id uint) (*models.Image, error)
	Delete(ctx context.Context, id uint) (string, error)
}

// GORMImageRepository is a GORM implementation of ImageRepository.
type GORMImageRepository struct {
	db *gorm.DB
}

// NewGORMImageRepository creates a new instance of GORMImageRepository.
func NewGORMImageRepository(db *gorm.DB) *GORMImageRepository {
	return &GORMImageRepository{db: db}
}

// AlbumByProduct returns the product's album with its images loaded.
func (r *GORMImageRepository) AlbumByProduct(ctx context.Context, productID uint) (*models.ImageAlbum, error) {
	var album models.ImageAlbum
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("images.id") }).
		Where("product_id = ?", productID).
		First(&album).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("album for product %d not found: %w", productID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get album for product %d: %w", productID, err)
	}
	return &album, nil
}

func (r *GORMImageRepository) Create(ctx context.Context, image *models.Image) error {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	return nil
}

func (r *GORMImageRepository) GetByID(ctx context.Context, id uint) (*models.Image, error) {
	var image models.Image
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("image with ID %d not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get image by ID %d: %w", id, err)
	}
	return &image, nil
}

// Delete removes the image row and returns its media path.
func (r *GORMImageRepository) Delete(ctx context.Context, id uint) (string, error) {
	var path string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var image models.Image
		if err := tx.First(&image, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("image with ID %d not found for deletion: %w", id, ErrNotFound)
			}
			return err
		}
		path = image.Path
		return tx.Delete(&image).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to delete image: %w", err)
	}
	return path, nil
}
