package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "mengemudiku_backend/internals/features/schedules/attendance/controller"
	registrationController "mengemudiku_backend/internals/features/schedules/registrations/controller"
	scheduleController "mengemudiku_backend/internals/features/schedules/schedules/controller"
)

// ScheduleInstructorRoutes: schedule management + attendance (instructor + admin group)
func ScheduleInstructorRoutes(api fiber.Router, db *gorm.DB) {
	// 🔹 Schedules
	scheduleCtrl := scheduleController.NewScheduleController(db)
	schedule := api.Group("/schedules")
	schedule.Post("/", scheduleCtrl.CreateSchedule)
	schedule.Get("/", scheduleCtrl.GetMySchedules)
	schedule.Put("/:id", scheduleCtrl.UpdateSchedule)
	schedule.Delete("/:id", scheduleCtrl.DeleteSchedule)

	// 🔹 Registrations per schedule
	registrationCtrl := registrationController.NewRegistrationController(db)
	api.Get("/schedules/:schedule_id/registrations", registrationCtrl.GetRegistrationsBySchedule)

	// 🔹 Attendance
	attendanceCtrl := attendanceController.NewAttendanceController(db)
	api.Put("/attendance", attendanceCtrl.MarkAttendance)
	api.Get("/schedules/:schedule_id/attendance", attendanceCtrl.GetAttendanceBySchedule)
}
