package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mengemudiku_backend/internals/features/users/user/controller"
)

func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)
	user := api.Group("/users")
	user.Get("/", userCtrl.GetAllUsers)
	user.Get("/:id", userCtrl.GetUserByID)
	user.Put("/:id", userCtrl.UpdateUser)
	user.Delete("/:id", userCtrl.DeleteUser)
}
