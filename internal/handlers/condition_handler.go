package handlers

import (
	"catalog/internal/serializers"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ConditionHandler handles HTTP requests for product conditions.
type ConditionHandler struct {
	service    *services.ConditionService
	serializer *serializers.Serializer
}

// NewConditionHandler creates a new ConditionHandler.
func NewConditionHandler(service *services.ConditionService, serializer *serializers.Serializer) *ConditionHandler {
	return &ConditionHandler{
		service:    service,
		serializer: serializer,
	}
}

// RegisterRoutes registers the condition routes with the Fiber app.
func (h *ConditionHandler) RegisterRoutes(router fiber.Router) {
	conditionRoutes := router.Group("/condition")
	conditionRoutes.Get("/", h.HandleGetConditions)
	conditionRoutes.Post("/", h.HandleCreateCondition)
	conditionRoutes.Get("/:id", h.HandleGetConditionByID)
	conditionRoutes.Put("/:id", h.HandleUpdateCondition)
	conditionRoutes.Delete("/:id", h.HandleDeleteCondition)
}

func (h *ConditionHandler) HandleGetConditions(c *fiber.Ctx) error {
	conditions, err := h.service.GetAllConditions(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.serializer.Conditions(conditions))
}

func (h *ConditionHandler) HandleGetConditionByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	condition, err := h.service.GetConditionByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.serializer.Condition(condition))
}

func (h *ConditionHandler) HandleCreateCondition(c *fiber.Ctx) error {
	var in serializers.ConditionInput
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	condition, err := h.service.CreateCondition(c.UserContext(), &in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, "Condition", h.serializer.Condition(condition))
}

func (h *ConditionHandler) HandleUpdateCondition(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in serializers.ConditionInput
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	condition, err := h.service.UpdateCondition(c.UserContext(), id, &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(h.serializer.Condition(condition))
}

// HandleDeleteCondition deletes a condition and, in cascade, its products.
func (h *ConditionHandler) HandleDeleteCondition(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.service.DeleteCondition(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
