package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "mengemudiku_backend/internals/features/courses/courses/controller"
	enrollmentController "mengemudiku_backend/internals/features/courses/enrollments/controller"
	postController "mengemudiku_backend/internals/features/courses/posts/controller"
	topicController "mengemudiku_backend/internals/features/courses/topics/controller"
)

// CourseAdminRoutes: course catalog management (admin group)
func CourseAdminRoutes(api fiber.Router, db *gorm.DB) {
	// 🔹 Courses
	courseCtrl := courseController.NewCourseController(db)
	course := api.Group("/courses")
	course.Post("/", courseCtrl.CreateCourse)
	course.Get("/", courseCtrl.GetAllCourses)
	course.Put("/:id", courseCtrl.UpdateCourse)
	course.Delete("/:id", courseCtrl.DeleteCourse)

	// 🔹 Topics
	topicCtrl := topicController.NewTopicController(db)
	topic := api.Group("/topics")
	topic.Post("/", topicCtrl.CreateTopic)
	topic.Put("/:id", topicCtrl.UpdateTopic)
	topic.Delete("/:id", topicCtrl.DeleteTopic)
	api.Get("/courses/:course_id/topics", topicCtrl.GetTopicsByCourse)

	// 🔹 Posts
	postCtrl := postController.NewPostController(db)
	post := api.Group("/posts")
	post.Post("/", postCtrl.CreatePost)
	post.Put("/:id", postCtrl.UpdatePost)
	post.Delete("/:id", postCtrl.DeletePost)
	api.Get("/topics/:topic_id/posts", postCtrl.GetAllPostsByTopic)

	// 🔹 Enrollments (admin view)
	enrollmentCtrl := enrollmentController.NewEnrollmentController(db)
	api.Get("/courses/:course_id/enrollments", enrollmentCtrl.GetEnrollmentsByCourse)
	api.Patch("/enrollments/:id/cancel", enrollmentCtrl.CancelEnrollment)
}
