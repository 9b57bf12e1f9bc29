package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionController "mengemudiku_backend/internals/features/exams/questions/controller"
)

// ExamAdminRoutes: question bank management (admin group)
func ExamAdminRoutes(api fiber.Router, db *gorm.DB) {
	// 🔹 Question bank
	questionCtrl := questionController.NewQuestionController(db)
	question := api.Group("/questions")
	question.Post("/", questionCtrl.CreateQuestion)
	question.Get("/", questionCtrl.GetAllQuestions)
	question.Get("/:id", questionCtrl.GetQuestionByID)
	question.Put("/:id", questionCtrl.UpdateQuestion)
	question.Delete("/:id", questionCtrl.DeleteQuestion)
}
