package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mengemudiku_backend/internals/features/users/auth/controller"
	"mengemudiku_backend/internals/middlewares"
	authMiddleware "mengemudiku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	api := app.Group("/api/auth")

	// 🔓 public
	api.Post("/register", middlewares.RegisterRateLimiter(), authCtrl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	api.Post("/login-google", middlewares.LoginRateLimiter(), authCtrl.LoginGoogle)
	api.Post("/refresh-token", authCtrl.RefreshToken)

	// 🔒 requires valid token
	secured := api.Group("/", authMiddleware.AuthMiddleware(db))
	secured.Get("/me", authCtrl.Me)
	secured.Post("/logout", authCtrl.Logout)
	secured.Post("/change-password", authCtrl.ChangePassword)
}
