package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "mengemudiku_backend/internals/features/courses/enrollments/controller"
	postController "mengemudiku_backend/internals/features/courses/posts/controller"
	topicController "mengemudiku_backend/internals/features/courses/topics/controller"
)

// CourseUserRoutes: student-facing course content + enrollment
func CourseUserRoutes(api fiber.Router, db *gorm.DB) {
	topicCtrl := topicController.NewTopicController(db)
	api.Get("/courses/:course_id/topics", topicCtrl.GetTopicsByCourse)

	postCtrl := postController.NewPostController(db)
	api.Get("/topics/:topic_id/posts", postCtrl.GetPublishedPostsByTopic)

	enrollmentCtrl := enrollmentController.NewEnrollmentController(db)
	enrollment := api.Group("/enrollments")
	enrollment.Post("/", enrollmentCtrl.CreateEnrollment)
	enrollment.Get("/", enrollmentCtrl.GetMyEnrollments)
}
