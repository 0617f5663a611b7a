package routes

import (
	"time"

	"ristcon.api/configs"
	"ristcon.api/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

const requestTimeout = 15 * time.Second

// SetupRoutes installs the shared middleware and every route group.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.AppConfig) {
	app.Use(recoverMiddleware.New())
	app.Use(middlewares.RequestID(requestTimeout))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(middlewares.CorsMiddleware(cfg.AllowedOrigins()))

	v1 := app.Group("/api/v1")
	registerPublicRoutes(v1, db)
	registerAdminRoutes(v1, db)

	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":  "error",
		"message": "Resource not found",
	})
}
