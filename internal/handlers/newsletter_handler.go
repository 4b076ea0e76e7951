package handlers

import (
	"catalog/internal/serializers"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// NewsLetterHandler handles HTTP requests for newsletter subscriptions.
type NewsLetterHandler struct {
	service    *services.NewsLetterService
	serializer *serializers.Serializer
}

// NewNewsLetterHandler creates a new NewsLetterHandler.
func NewNewsLetterHandler(service *services.NewsLetterService, serializer *serializers.Serializer) *NewsLetterHandler {
	return &NewsLetterHandler{
		service:    service,
		serializer: serializer,
	}
}

// RegisterRoutes registers the newsletter routes with the Fiber app.
func (h *NewsLetterHandler) RegisterRoutes(router fiber.Router) {
	newsletterRoutes := router.Group("/newsletter")
	newsletterRoutes.Get("/", h.HandleGetSubscriptions)
	newsletterRoutes.Post("/", h.HandleSubscribe)
	newsletterRoutes.Delete("/:id", h.HandleUnsubscribe)
}

func (h *NewsLetterHandler) HandleGetSubscriptions(c *fiber.Ctx) error {
	subscriptions, err := h.service.GetAllSubscriptions(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.serializer.NewsLetters(subscriptions))
}

func (h *NewsLetterHandler) HandleSubscribe(c *fiber.Ctx) error {
	var in serializers.NewsLetterInput
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	subscription, err := h.service.Subscribe(c.UserContext(), &in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, "Newsletter subscription", serializers.NewsLetter{ID: subscription.ID, Email: subscription.Email})
}

func (h *NewsLetterHandler) HandleUnsubscribe(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.service.Unsubscribe(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
