package repositories

import (
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// deleteProducts removes the products matching the condition together with
// their albums, images and orders, inside tx. It returns the media paths of
// the deleted images and the number of products removed.
func deleteProducts(tx *gorm.DB, query string, args ...any) ([]string, int64, error) {
	var productIDs []uint
	if err := tx.Model(&models.Product{}).Where(query, args...).Pluck("id", &productIDs).Error; err != nil {
		return nil, 0, fmt.Errorf("select products: %w", err)
	}
	if len(productIDs) == 0 {
		return nil, 0, nil
	}

	var albumIDs []uint
	if err := tx.Model(&models.ImageAlbum{}).Where("product_id IN ?", productIDs).Pluck("id", &albumIDs).Error; err != nil {
		return nil, 0, fmt.Errorf("select albums: %w", err)
	}

	var paths []string
	if len(albumIDs) > 0 {
		if err := tx.Model(&models.Image{}).Where("album_id IN ?", albumIDs).Pluck("path", &paths).Error; err != nil {
			return nil, 0, fmt.Errorf("select images: %w", err)
		}
		if err := tx.Where("album_id IN ?", albumIDs).Delete(&models.Image{}).Error; err != nil {
			return nil, 0, fmt.Errorf("delete images: %w", err)
		}
		if err := tx.Where("id IN ?", albumIDs).Delete(&models.ImageAlbum{}).Error; err != nil {
			return nil, 0, fmt.Errorf("delete albums: %w", err)
		}
	}

	if err := tx.Where("product_id IN ?", productIDs).Delete(&models.Order{}).Error; err != nil {
		return nil, 0, fmt.Errorf("delete orders: %w", err)
	}
	res := tx.Where("id IN ?", productIDs).Delete(&models.Product{})
	if res.Error != nil {
		return nil, 0, fmt.Errorf("delete products: %w", res.Error)
	}
	return paths, res.RowsAffected, nil
}
