package handlers

import (
	"catalog/internal/serializers"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service    *services.ProductService
	serializer *serializers.Serializer
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, serializer *serializers.Serializer) *ProductHandler {
	return &ProductHandler{
		service:    service,
		serializer: serializer,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/product")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts lists products, optionally filtered with ?search=.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.UserContext(), c.Query("search"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.serializer.Products(products))
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	product, err := h.service.GetProductByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.serializer.Product(product))
}

// HandleCreateProduct creates a new product together with its empty album.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var in serializers.ProductInput
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	product, err := h.service.CreateProduct(c.UserContext(), &in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, "Product", h.serializer.Product(product))
}

// HandleUpdateProduct replaces an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in serializers.ProductInput
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	product, err := h.service.UpdateProduct(c.UserContext(), id, &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(h.serializer.Product(product))
}

// HandleDeleteProduct deletes a product with its album, images and orders.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
