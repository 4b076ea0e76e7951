package services

import (
	"context"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/serializers"
	"catalog/internal/storage"

	"github.com/go-playground/validator/v10"
)

const mediaRefMessage = "Enter a valid URL. Files must be uploaded through the category images endpoint."

// CategoryDetail is a category with the products currently filed under it.
type CategoryDetail struct {
	Category models.Category
	Products []models.Product
}

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo     repositories.CategoryRepository
	products repositories.ProductRepository
	media    MediaStore
	events   EventPublisher
	validate *validator.Validate
}

// NewCategoryService creates a new CategoryService. media and events may be nil.
func NewCategoryService(repo repositories.CategoryRepository, products repositories.ProductRepository, media MediaStore, events EventPublisher) *CategoryService {
	return &CategoryService{
		repo:     repo,
		products: products,
		media:    media,
		events:   events,
		validate: newValidator(),
	}
}

// GetAllCategories retrieves every category with its products, using one
// product query for all of them.
func (s *CategoryService) GetAllCategories(ctx context.Context) ([]CategoryDetail, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	products, err := s.products.ListByCategories(ctx, ids)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uint][]models.Product, len(categories))
	for _, p := range products {
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
	}
	details := make([]CategoryDetail, 0, len(categories))
	for _, c := range categories {
		details = append(details, CategoryDetail{Category: c, Products: byCategory[c.ID]})
	}
	return details, nil
}

// GetCategoryByID retrieves a single category with its products.
func (s *CategoryService) GetCategoryByID(ctx context.Context, id uint) (*CategoryDetail, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, category)
}

// CreateCategory validates the input and stores a new category.
func (s *CategoryService) CreateCategory(ctx context.Context, in *serializers.CategoryInput) (*CategoryDetail, error) {
	category := &models.Category{}
	if err := s.validateInput(in, category); err != nil {
		return nil, err
	}
	in.Apply(category)
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return &CategoryDetail{Category: *category}, nil
}

// UpdateCategory replaces the writable fields of an existing category.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, in *serializers.CategoryInput) (*CategoryDetail, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validateInput(in, category); err != nil {
		return nil, err
	}

	previous := []string{category.BannerImage, category.ThumbnailImage}
	in.Apply(category)
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	removeMedia(s.media, categoryMedia(replaced(previous, category.BannerImage, category.ThumbnailImage)))
	return s.detail(ctx, category)
}

// UploadCategoryImages stores new banner and/or thumbnail files for a category.
func (s *CategoryService) UploadCategoryImages(ctx context.Context, id uint, banner, thumbnail *Upload) (*CategoryDetail, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if banner == nil && thumbnail == nil {
		return nil, fieldError("category_banner_image", "No file was submitted.")
	}

	previous := []string{category.BannerImage, category.ThumbnailImage}
	var saved []string
	store := func(field string, up *Upload, dst *string) error {
		if up == nil {
			return nil
		}
		if !isImageFile(up.Filename) {
			return fieldError(field, invalidImageMessage)
		}
		path, err := s.media.Save(storage.CategoryFolder, up.Filename, up.Body)
		if err != nil {
			return err
		}
		saved = append(saved, path)
		*dst = path
		return nil
	}
	if err := store("category_banner_image", banner, &category.BannerImage); err != nil {
		removeMedia(s.media, saved)
		return nil, err
	}
	if err := store("category_thumbnail_image", thumbnail, &category.ThumbnailImage); err != nil {
		removeMedia(s.media, saved)
		return nil, err
	}

	if err := s.repo.Update(ctx, category); err != nil {
		removeMedia(s.media, saved)
		return nil, err
	}
	removeMedia(s.media, categoryMedia(replaced(previous, category.BannerImage, category.ThumbnailImage)))
	return s.detail(ctx, category)
}

// DeleteCategory deletes a category and, in cascade, its products.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	paths, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	removeMedia(s.media, paths)
	publish(s.events, "category.deleted", map[string]any{"id": id})
	return nil
}

func (s *CategoryService) detail(ctx context.Context, category *models.Category) (*CategoryDetail, error) {
	products, err := s.products.ListByCategories(ctx, []uint{category.ID})
	if err != nil {
		return nil, err
	}
	return &CategoryDetail{Category: *category, Products: products}, nil
}

// validateInput checks in against the category it will be applied to. Local
// media paths are only accepted when they are already stored on current;
// new files go through UploadCategoryImages.
func (s *CategoryService) validateInput(in *serializers.CategoryInput, current *models.Category) error {
	if err := validateStruct(s.validate, in); err != nil {
		return err
	}
	verr := &ValidationError{Fields: map[string]string{}}
	if storage.IsLocal(in.CategoryBannerImage) && in.CategoryBannerImage != current.BannerImage {
		verr.Fields["category_banner_image"] = mediaRefMessage
	}
	if storage.IsLocal(in.CategoryThumbnailImage) && in.CategoryThumbnailImage != current.ThumbnailImage {
		verr.Fields["category_thumbnail_image"] = mediaRefMessage
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// categoryMedia keeps the paths of files uploaded for categories.
func categoryMedia(paths []string) []string {
	var out []string
	for _, p := range paths {
		if storage.InFolder(p, storage.CategoryFolder) {
			out = append(out, p)
		}
	}
	return out
}

// replaced returns the entries of previous no longer in use.
func replaced(previous []string, current ...string) []string {
	var out []string
	for _, p := range previous {
		inUse := false
		for _, c := range current {
			if p == c {
				inUse = true
				break
			}
		}
		if !inUse {
			out = append(out, p)
		}
	}
	return out
}
