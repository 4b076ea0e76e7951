package handlers

import (
	"catalog/internal/serializers"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service    *services.CategoryService
	serializer *serializers.Serializer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService, serializer *serializers.Serializer) *CategoryHandler {
	return &CategoryHandler{
		service:    service,
		serializer: serializer,
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/category")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Put("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
	categoryRoutes.Post("/:id/images", h.HandleUploadImages)
}

func (h *CategoryHandler) render(d *services.CategoryDetail) serializers.Category {
	return h.serializer.Category(&d.Category, d.Products)
}

// HandleGetCategories lists every category with its product summaries.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	details, err := h.service.GetAllCategories(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	out := make([]serializers.Category, 0, len(details))
	for i := range details {
		out = append(out, h.render(&details[i]))
	}
	return c.JSON(out)
}

// HandleGetCategoryByID retrieves a single category.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	detail, err := h.service.GetCategoryByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.render(detail))
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var in serializers.CategoryInput
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	in.Resolve(h.serializer)
	detail, err := h.service.CreateCategory(c.UserContext(), &in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, "Category", h.render(detail))
}

// HandleUpdateCategory replaces an existing category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in serializers.CategoryInput
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	in.Resolve(h.serializer)
	detail, err := h.service.UpdateCategory(c.UserContext(), id, &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(h.render(detail))
}

// HandleUploadImages stores the multipart "banner" and "thumbnail" files.
func (h *CategoryHandler) HandleUploadImages(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	form, err := multipartForm(c)
	if err != nil {
		return writeError(c, err)
	}
	banner, closeBanner, err := formUpload(form, "banner")
	if err != nil {
		return writeError(c, err)
	}
	defer closeBanner()
	thumbnail, closeThumbnail, err := formUpload(form, "thumbnail")
	if err != nil {
		return writeError(c, err)
	}
	defer closeThumbnail()

	detail, err := h.service.UploadCategoryImages(c.UserContext(), id, banner, thumbnail)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(h.render(detail))
}

// HandleDeleteCategory deletes a category and every product filed under it.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.service.DeleteCategory(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
