package handlers

import (
	"catalog/internal/serializers"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders and shipping addresses.
type OrderHandler struct {
	service    *services.OrderService
	serializer *serializers.Serializer
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, serializer *serializers.Serializer) *OrderHandler {
	return &OrderHandler{
		service:    service,
		serializer: serializer,
	}
}

// RegisterRoutes registers the order and shipping address routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/order")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Put("/:id", h.HandleUpdateOrder)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)

	addressRoutes := router.Group("/shipping-address")
	addressRoutes.Get("/", h.HandleGetAddresses)
	addressRoutes.Post("/", h.HandleCreateAddress)
	addressRoutes.Get("/:id", h.HandleGetAddressByID)
	addressRoutes.Put("/:id", h.HandleUpdateAddress)
	addressRoutes.Delete("/:id", h.HandleDeleteAddress)
}

// HandleGetOrders retrieves all orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.serializer.Orders(orders))
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	order, err := h.service.GetOrderByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.serializer.Order(order))
}

// HandleCreateOrder creates a new order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var in serializers.OrderInput
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	order, err := h.service.CreateOrder(c.UserContext(), &in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, "Order", h.serializer.Order(order))
}

// HandleUpdateOrder replaces the product, customer and quantity of an order.
func (h *OrderHandler) HandleUpdateOrder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in serializers.OrderInput
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	order, err := h.service.UpdateOrder(c.UserContext(), id, &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(h.serializer.Order(order))
}

// HandleDeleteOrder deletes an order.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.service.DeleteOrder(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *OrderHandler) HandleGetAddresses(c *fiber.Ctx) error {
	addresses, err := h.service.GetAllAddresses(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.serializer.ShippingAddresses(addresses))
}

func (h *OrderHandler) HandleGetAddressByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	address, err := h.service.GetAddressByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.serializer.ShippingAddress(address))
}

func (h *OrderHandler) HandleCreateAddress(c *fiber.Ctx) error {
	var in serializers.ShippingAddressInput
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	address, err := h.service.CreateAddress(c.UserContext(), &in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, "Shipping address", h.serializer.ShippingAddress(address))
}

func (h *OrderHandler) HandleUpdateAddress(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in serializers.ShippingAddressInput
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	address, err := h.service.UpdateAddress(c.UserContext(), id, &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(h.serializer.ShippingAddress(address))
}

// HandleDeleteAddress deletes a shipping address and the orders shipped to it.
func (h *OrderHandler) HandleDeleteAddress(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.service.DeleteAddress(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
