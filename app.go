package main

import (
	"errors"
	"strings"
	"time"

	"catalog/internal/config"
	"catalog/internal/handlers"
	"catalog/internal/middleware"
	"catalog/internal/repositories"
	"catalog/internal/serializers"
	"catalog/internal/services"
	"catalog/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// NewApp wires repositories, services and handlers into a Fiber app.
// events may be nil, in which case domain events are not published.
func NewApp(cfg *config.Config, db *gorm.DB, events services.EventPublisher) (*fiber.App, error) {
	media, err := storage.NewLocalStore(cfg.MediaDir, cfg.MediaURL)
	if err != nil {
		return nil, err
	}
	serializer := serializers.New(cfg.MediaURL)

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	conditionRepo := repositories.NewGORMConditionRepository(db)
	imageRepo := repositories.NewGORMImageRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	newsletterRepo := repositories.NewGORMNewsLetterRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// --- Services ---
	productService := services.NewProductService(productRepo, categoryRepo, conditionRepo, media, events)
	categoryService := services.NewCategoryService(categoryRepo, productRepo, media, events)
	conditionService := services.NewConditionService(conditionRepo, media)
	cartService := services.NewCartService(productRepo)
	imageService := services.NewImageService(imageRepo, productRepo, media)
	orderService := services.NewOrderService(orderRepo, productRepo, events)
	newsletterService := services.NewNewsLetterService(newsletterRepo, events)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)

	// --- Fiber App ---
	app := fiber.New(fiber.Config{
		AppName:      "catalog",
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(metrics.Handler())

	// --- Operational Endpoints ---
	app.Get("/health", healthHandler(db, events != nil))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	if strings.HasPrefix(cfg.MediaURL, "/") {
		app.Static(cfg.MediaURL, cfg.MediaDir)
	}

	// --- API Routes ---
	handlers.NewProductHandler(productService, serializer).RegisterRoutes(app)
	handlers.NewCategoryHandler(categoryService, serializer).RegisterRoutes(app)
	handlers.NewConditionHandler(conditionService, serializer).RegisterRoutes(app)
	handlers.NewCartHandler(cartService, serializer).RegisterRoutes(app)
	handlers.NewImageHandler(imageService, serializer).RegisterRoutes(app)
	handlers.NewOrderHandler(orderService, serializer).RegisterRoutes(app)
	handlers.NewNewsLetterHandler(newsletterService, serializer).RegisterRoutes(app)
	handlers.NewAuthHandler(authService, middleware.AuthRequired(authService)).RegisterRoutes(app)

	return app, nil
}

// errorHandler renders errors that escape the handlers, such as unknown
// routes and oversized bodies, as JSON.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	return c.Status(code).JSON(fiber.Map{"message": message})
}

func healthHandler(db *gorm.DB, eventsEnabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, database := "healthy", "up"
		code := fiber.StatusOK
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.UserContext())
		}
		if err != nil {
			status, database = "unhealthy", "down"
			code = fiber.StatusServiceUnavailable
		}

		events := "disabled"
		if eventsEnabled {
			events = "enabled"
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"time":     time.Now().Format(time.RFC3339),
			"database": database,
			"events":   events,
		})
	}
}
