package handlers

import (
	"catalog/internal/serializers"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ImageHandler handles HTTP requests for product album images.
type ImageHandler struct {
	service    *services.ImageService
	serializer *serializers.Serializer
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(service *services.ImageService, serializer *serializers.Serializer) *ImageHandler {
	return &ImageHandler{
		service:    service,
		serializer: serializer,
	}
}

// RegisterRoutes registers the image routes with the Fiber app.
func (h *ImageHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/product/:id/images", h.HandleGetProductImages)
	router.Post("/product/:id/images", h.HandleAddProductImage)
	router.Delete("/image/:id", h.HandleDeleteImage)
}

// HandleGetProductImages lists the images of a product's album.
func (h *ImageHandler) HandleGetProductImages(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	images, err := h.service.GetProductImages(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.serializer.Images(images))
}

// HandleAddProductImage stores the multipart "image" file in the product's album.
func (h *ImageHandler) HandleAddProductImage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	form, err := multipartForm(c)
	if err != nil {
		return writeError(c, err)
	}
	upload, closeUpload, err := formUpload(form, "image")
	if err != nil {
		return writeError(c, err)
	}
	defer closeUpload()

	var name string
	if values := form.Value["name"]; len(values) > 0 {
		name = values[0]
	}
	image, err := h.service.AddProductImage(c.UserContext(), id, name, upload)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, "Image", h.serializer.Image(image))
}

// HandleDeleteImage deletes an image and its stored file.
func (h *ImageHandler) HandleDeleteImage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.service.DeleteImage(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
