package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	registrationController "mengemudiku_backend/internals/features/schedules/registrations/controller"
	scheduleController "mengemudiku_backend/internals/features/schedules/schedules/controller"
)

// ScheduleUserRoutes: browsing schedules + seat registration (student group)
func ScheduleUserRoutes(api fiber.Router, db *gorm.DB) {
	scheduleCtrl := scheduleController.NewScheduleController(db)
	api.Get("/courses/:course_id/schedules", scheduleCtrl.GetSchedulesByCourse)
	api.Get("/schedules/:id", scheduleCtrl.GetScheduleByID)

	registrationCtrl := registrationController.NewRegistrationController(db)
	registration := api.Group("/schedule-registrations")
	registration.Post("/", registrationCtrl.CreateRegistration)
	registration.Get("/", registrationCtrl.GetMyRegistrations)
	registration.Patch("/:id/cancel", registrationCtrl.CancelRegistration)
}
