package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptController "mengemudiku_backend/internals/features/exams/test_attempts/controller"
)

// ExamUserRoutes: taking tests (student group)
func ExamUserRoutes(api fiber.Router, db *gorm.DB) {
	// 🔹 Test attempts
	attemptCtrl := attemptController.NewTestAttemptController(db)
	attempt := api.Group("/test-attempts")
	attempt.Post("/", attemptCtrl.StartAttempt)
	attempt.Get("/", attemptCtrl.GetMyAttempts)
	attempt.Get("/:id", attemptCtrl.GetAttempt)
	attempt.Post("/:id/submit", attemptCtrl.SubmitAttempt)
}
