package handlers

import (
	"log/slog"

	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	requireAuth fiber.Handler
}

// NewAuthHandler creates a new AuthHandler. requireAuth guards the profile route.
func NewAuthHandler(authService *services.AuthService, requireAuth fiber.Handler) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		requireAuth: requireAuth,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Get("/profile", h.requireAuth, h.HandleProfile)
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return writeError(c, err)
	}
	if err := services.Validate(&req); err != nil {
		return writeError(c, err)
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.authService.RegisterUser(c.UserContext(), &user); err != nil {
		slog.Info("registration rejected", "username", req.Username, "error", err)
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := parseBody(c, &req); err != nil {
		return writeError(c, err)
	}
	if err := services.Validate(&req); err != nil {
		return writeError(c, err)
	}

	token, err := h.authService.LoginUser(c.UserContext(), req.Username, req.Password)
	if err != nil {
		slog.Info("login failed", "username", req.Username, "error", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}

// HandleProfile returns the profile of the authenticated user.
func (h *AuthHandler) HandleProfile(c *fiber.Ctx) error {
	// JWT numeric claims decode as float64.
	userID, ok := c.Locals("user_id").(float64)
	if !ok || userID <= 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid or expired token",
		})
	}

	profile, err := h.authService.GetProfile(c.UserContext(), uint(userID))
	if err != nil {
		return writeError(c, err)
	}
	resp := fiber.Map{
		"id":      profile.ID,
		"user_id": profile.UserID,
	}
	if profile.User != nil {
		resp["username"] = profile.User.Username
		resp["email"] = profile.User.Email
	}
	return c.JSON(resp)
}
