package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "mengemudiku_backend/internals/features/courses/courses/controller"
)

// CoursePublicRoutes: catalog browsing without login
func CoursePublicRoutes(api fiber.Router, db *gorm.DB) {
	courseCtrl := courseController.NewCourseController(db)
	api.Get("/courses", courseCtrl.GetActiveCourses)
	api.Get("/courses/:slug", courseCtrl.GetCourseBySlug)
}
