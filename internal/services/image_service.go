package services

import (
	"context"
	"path/filepath"
	"strings"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

const (
	albumImagesFolder   = "image_albums/images"
	invalidImageMessage = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
)

var imageExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}

func isImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// ImageService manages the images of product albums.
type ImageService struct {
	repo     repositories.ImageRepository
	products repositories.ProductRepository
	media    MediaStore
}

// NewImageService creates a new ImageService.
func NewImageService(repo repositories.ImageRepository, products repositories.ProductRepository, media MediaStore) *ImageService {
	return &ImageService{repo: repo, products: products, media: media}
}

// GetProductImages lists the images in a product's album.
func (s *ImageService) GetProductImages(ctx context.Context, productID uint) ([]models.Image, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	album, err := s.repo.AlbumByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return album.Images, nil
}

// AddProductImage stores the upload and appends it to the product's album.
// name defaults to the uploaded file name.
func (s *ImageService) AddProductImage(ctx context.Context, productID uint, name string, up *Upload) (*models.Image, error) {
	album, err := s.repo.AlbumByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if up == nil {
		return nil, fieldError("image", "No file was submitted.")
	}
	if !isImageFile(up.Filename) {
		return nil, fieldError("image", invalidImageMessage)
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(up.Filename), filepath.Ext(up.Filename))
	}
	if len(name) > 100 {
		return nil, fieldError("name", "Ensure this field has no more than 100 characters.")
	}

	path, err := s.media.Save(albumImagesFolder, up.Filename, up.Body)
	if err != nil {
		return nil, err
	}
	image := &models.Image{Name: name, AlbumID: album.ID, Path: path}
	if err := s.repo.Create(ctx, image); err != nil {
		removeMedia(s.media, []string{path})
		return nil, err
	}
	return image, nil
}

// DeleteImage removes an image and its file.
func (s *ImageService) DeleteImage(ctx context.Context, id uint) error {
	path, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	removeMedia(s.media, []string{path})
	return nil
}
