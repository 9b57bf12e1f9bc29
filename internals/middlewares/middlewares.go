package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"mengemudiku_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain. Order matters:
// recovery first so the logger still records panicking requests.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
