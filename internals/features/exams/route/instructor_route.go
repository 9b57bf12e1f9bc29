package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	templateController "mengemudiku_backend/internals/features/exams/test_templates/controller"
)

// ExamInstructorRoutes: test template management (instructor + admin group)
func ExamInstructorRoutes(api fiber.Router, db *gorm.DB) {
	// 🔹 Test templates
	templateCtrl := templateController.NewTestTemplateController(db)
	template := api.Group("/test-templates")
	template.Post("/", templateCtrl.CreateTestTemplate)
	template.Get("/:id", templateCtrl.GetTestTemplateByID)
	template.Put("/:id", templateCtrl.UpdateTestTemplate)
	template.Delete("/:id", templateCtrl.DeleteTestTemplate)
	api.Get("/courses/:course_id/test-templates", templateCtrl.GetTestTemplatesByCourse)
}
