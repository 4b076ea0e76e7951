package serializers

import "catalog/internal/models"

// Product is the wire form of a product.
type Product struct {
	ID                uint              `json:"id"`
	Name              string            `json:"name"`
	Category          uint              `json:"category"`
	CategoryDetails   Summary           `json:"category_details"`
	Condition         uint              `json:"condition"`
	ConditionDetails  Summary           `json:"condition_details"`
	Description       string            `json:"description"`
	Price             int64             `json:"price"`
	PreviousPrice     int64             `json:"previous_price"`
	Discount          int64             `json:"discount"`
	QuantityAvailable int               `json:"quantity_available"`
	ProductInStock    bool              `json:"product_in_stock"`
	FreeShipping      bool              `json:"free_shipping"`
	Ratings           int               `json:"ratings"`
	Properties        []models.Property `json:"properties"`
	Thumbnails        []string          `json:"thumbnails"`
}

// ProductSummary is the product entry listed inside a category.
type ProductSummary struct {
	ID                uint              `json:"id"`
	Name              string            `json:"name"`
	Category          uint              `json:"category"`
	CategoryDetails   Summary           `json:"category_details"`
	Description       string            `json:"description"`
	Price             int64             `json:"price"`
	PreviousPrice     int64             `json:"previous_price"`
	Discount          int64             `json:"discount"`
	QuantityAvailable int               `json:"quantity_available"`
	ProductInStock    bool              `json:"product_in_stock"`
	FreeShipping      bool              `json:"free_shipping"`
	Ratings           int               `json:"ratings"`
	Properties        []models.Property `json:"properties"`
}

// ProductInput is the accepted body for creating or replacing a product.
type ProductInput struct {
	Name              string            `json:"name" validate:"required,max=100"`
	Category          *uint             `json:"category" validate:"required"`
	Condition         *uint             `json:"condition" validate:"required"`
	Description       string            `json:"description" validate:"required"`
	Price             int64             `json:"price" validate:"gte=0"`
	PreviousPrice     int64             `json:"previous_price" validate:"gte=0"`
	Discount          int64             `json:"discount" validate:"gte=0"`
	QuantityAvailable int               `json:"quantity_available" validate:"gte=0"`
	ProductInStock    bool              `json:"product_in_stock"`
	FreeShipping      bool              `json:"free_shipping"`
	Ratings           *int              `json:"ratings" validate:"omitempty,min=1,max=5"`
	Properties        []models.Property `json:"properties" validate:"omitempty,dive"`
}

// Apply copies the input onto p. Call only after validation.
func (in *ProductInput) Apply(p *models.Product) {
	p.Name = in.Name
	p.CategoryID = *in.Category
	p.ConditionID = *in.Condition
	p.Description = in.Description
	p.Price = in.Price
	p.PreviousPrice = in.PreviousPrice
	p.Discount = in.Discount
	p.QuantityAvailable = in.QuantityAvailable
	p.InStock = in.ProductInStock
	p.FreeShipping = in.FreeShipping
	p.Ratings = 1
	if in.Ratings != nil {
		p.Ratings = *in.Ratings
	}
	p.Properties = in.Properties
}

func categorySummary(p *models.Product) Summary {
	if p.Category == nil {
		return Summary{ID: p.CategoryID}
	}
	return Summary{ID: p.Category.ID, Name: p.Category.Name}
}

// Product renders a product with its thumbnails and related summaries.
func (s *Serializer) Product(p *models.Product) Product {
	out := Product{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.CategoryID,
		CategoryDetails:   categorySummary(p),
		Condition:         p.ConditionID,
		ConditionDetails:  Summary{ID: p.ConditionID},
		Description:       p.Description,
		Price:             p.Price,
		PreviousPrice:     p.PreviousPrice,
		Discount:          p.Discount,
		QuantityAvailable: p.QuantityAvailable,
		ProductInStock:    p.InStock,
		FreeShipping:      p.FreeShipping,
		Ratings:           p.Ratings,
		Properties:        properties(p.Properties),
		Thumbnails:        []string{},
	}
	if p.Condition != nil {
		out.ConditionDetails.Name = p.Condition.Name
	}
	if p.Album != nil {
		for _, img := range p.Album.Images {
			out.Thumbnails = append(out.Thumbnails, s.URL(img.Path))
		}
	}
	return out
}

// Products renders a list of products; the result is never nil.
func (s *Serializer) Products(products []models.Product) []Product {
	out := make([]Product, 0, len(products))
	for i := range products {
		out = append(out, s.Product(&products[i]))
	}
	return out
}

// ProductSummary renders the short form used by category responses.
func (s *Serializer) ProductSummary(p *models.Product) ProductSummary {
	return ProductSummary{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.CategoryID,
		CategoryDetails:   categorySummary(p),
		Description:       p.Description,
		Price:             p.Price,
		PreviousPrice:     p.PreviousPrice,
		Discount:          p.Discount,
		QuantityAvailable: p.QuantityAvailable,
		ProductInStock:    p.InStock,
		FreeShipping:      p.FreeShipping,
		Ratings:           p.Ratings,
		Properties:        properties(p.Properties),
	}
}
