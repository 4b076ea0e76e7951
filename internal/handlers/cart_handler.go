package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"

	"catalog/internal/serializers"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

const invalidIDListMessage = "invalid datatype. Must be a list or array of product ids"

// CartHandler resolves the product id lists kept by clients for the cart
// and the saved-items list.
type CartHandler struct {
	service    *services.CartService
	serializer *serializers.Serializer
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService, serializer *serializers.Serializer) *CartHandler {
	return &CartHandler{
		service:    service,
		serializer: serializer,
	}
}

// RegisterRoutes registers the cart and saved routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/cart", h.HandleGetProducts)
	router.Post("/saved", h.HandleGetProducts)
}

// HandleGetProducts returns the products named by a JSON array of ids.
func (h *CartHandler) HandleGetProducts(c *fiber.Ctx) error {
	ids, ok := parseIDList(c.Body())
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": invalidIDListMessage,
		})
	}
	products, err := h.service.GetProducts(c.UserContext(), ids)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.serializer.Products(products))
}

// parseIDList accepts a JSON array whose elements are non-negative integers
// or strings holding one.
func parseIDList(body []byte) ([]uint, bool) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, false
	}
	ids := make([]uint, 0, len(raw))
	for _, elem := range raw {
		if bytes.Equal(bytes.TrimSpace(elem), []byte("null")) {
			return nil, false
		}
		var n uint64
		if err := json.Unmarshal(elem, &n); err == nil {
			ids = append(ids, uint(n))
			continue
		}
		var s string
		if err := json.Unmarshal(elem, &s); err != nil {
			return nil, false
		}
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, false
		}
		ids = append(ids, uint(n))
	}
	return ids, true
}
