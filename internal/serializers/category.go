package serializers

import "catalog/internal/models"

// Category is the wire form of a category, with its product summaries.
type Category struct {
	ID                     uint              `json:"id"`
	Name                   string            `json:"name"`
	CategoryBannerImage    *string           `json:"category_banner_image"`
	CategoryThumbnailImage *string           `json:"category_thumbnail_image"`
	Properties             []models.Property `json:"properties"`
	Products               []ProductSummary  `json:"products"`
}

// CategoryInput is the accepted body for creating or replacing a category.
type CategoryInput struct {
	Name                   string            `json:"name" validate:"required,max=100"`
	CategoryBannerImage    string            `json:"category_banner_image" validate:"max=255"`
	CategoryThumbnailImage string            `json:"category_thumbnail_image" validate:"max=255"`
	Properties             []models.Property `json:"properties" validate:"omitempty,dive"`
}

// Resolve maps media URLs previously rendered by s back to stored paths.
func (in *CategoryInput) Resolve(s *Serializer) {
	in.CategoryBannerImage = s.Ref(in.CategoryBannerImage)
	in.CategoryThumbnailImage = s.Ref(in.CategoryThumbnailImage)
}

// Apply copies the input onto c.
func (in *CategoryInput) Apply(c *models.Category) {
	c.Name = in.Name
	c.BannerImage = in.CategoryBannerImage
	c.ThumbnailImage = in.CategoryThumbnailImage
	c.Properties = in.Properties
}

// Category renders c together with the given products, which must belong to it.
func (s *Serializer) Category(c *models.Category, products []models.Product) Category {
	out := Category{
		ID:                     c.ID,
		Name:                   c.Name,
		CategoryBannerImage:    s.optionalURL(c.BannerImage),
		CategoryThumbnailImage: s.optionalURL(c.ThumbnailImage),
		Properties:             properties(c.Properties),
		Products:               make([]ProductSummary, 0, len(products)),
	}
	for i := range products {
		out.Products = append(out.Products, s.ProductSummary(&products[i]))
	}
	return out
}

// Condition is the wire form of a condition.
type Condition struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ConditionInput is the accepted body for creating or replacing a condition.
type ConditionInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

// Condition renders c.
func (s *Serializer) Condition(c *models.Condition) Condition {
	return Condition{ID: c.ID, Name: c.Name}
}

// Conditions renders a list of conditions; the result is never nil.
func (s *Serializer) Conditions(conditions []models.Condition) []Condition {
	out := make([]Condition, 0, len(conditions))
	for i := range conditions {
		out = append(out, s.Condition(&conditions[i]))
	}
	return out
}
