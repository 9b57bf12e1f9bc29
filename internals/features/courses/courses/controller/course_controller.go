package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	auditService "mengemudiku_backend/internals/features/audit/audit_logs/service"
	"mengemudiku_backend/internals/features/courses/courses/dto"
	"mengemudiku_backend/internals/features/courses/courses/model"
	helper "mengemudiku_backend/internals/helpers"
)

var validate = validator.New()

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// 🟢 POST /api/a/courses
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	course := req.ToModel()

	slug, err := helper.EnsureUniqueSlug(ctrl.DB, "courses", "course_slug", helper.GenerateSlug(req.CourseTitle))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}
	course.CourseSlug = slug

	if err := ctrl.DB.Create(course).Error; err != nil {
		log.Printf("[ERROR] Failed to create course: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create course")
	}

	auditService.Record(ctrl.DB, c, "course.create", "courses", course.CourseID.String(), req)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course created", dto.ToCourseResponse(course))
}

// 🟢 GET /api/a/courses?search=&page=&per_page=  (admin: includes inactive)
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.CourseModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("course_title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	var courses []model.CourseModel
	if err := q.Order("course_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&courses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	return helper.SuccessWithPagination(c, "Courses fetched",
		dto.ToCourseResponses(courses), helper.BuildPagination(paging, total, len(courses)))
}

// 🟢 GET /api/public/courses  (students: active only)
func (ctrl *CourseController) GetActiveCourses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.Model(&model.CourseModel{}).Where("course_is_active = true")
	if search := c.Query("search"); search != "" {
		q = q.Where("course_title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	var courses []model.CourseModel
	if err := q.Order("course_title ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&courses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	return helper.SuccessWithPagination(c, "Courses fetched",
		dto.ToCourseResponses(courses), helper.BuildPagination(paging, total, len(courses)))
}

// 🟢 GET /api/public/courses/:slug
func (ctrl *CourseController) GetCourseBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var course model.CourseModel
	if err := ctrl.DB.Where("course_slug = ? AND course_is_active = true", slug).
		First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	return helper.Success(c, "Course fetched", dto.ToCourseResponse(&course))
}

// 🟢 PUT /api/a/courses/:id
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	updates := map[string]interface{}{}
	if req.CourseTitle != nil {
		updates["course_title"] = *req.CourseTitle
	}
	if req.CourseDescription != nil {
		updates["course_description"] = *req.CourseDescription
	}
	if req.CoursePrice != nil {
		updates["course_price"] = *req.CoursePrice
	}
	if req.CourseDurationHours != nil {
		updates["course_duration_hours"] = *req.CourseDurationHours
	}
	if req.CourseLicenseCategories != nil {
		updates["course_license_categories"] = pq.StringArray(req.CourseLicenseCategories)
	}
	if req.CourseInstructorID != nil {
		updates["course_instructor_id"] = req.CourseInstructorID
	}
	if req.CourseIsActive != nil {
		updates["course_is_active"] = *req.CourseIsActive
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.Model(&course).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update course")
	}

	auditService.Record(ctrl.DB, c, "course.update", "courses", course.CourseID.String(), updates)

	return helper.Success(c, "Course updated", dto.ToCourseResponse(&course))
}

// 🟢 DELETE /api/a/courses/:id (soft delete)
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}

	res := ctrl.DB.Delete(&model.CourseModel{}, "course_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Course not found")
	}

	auditService.Record(ctrl.DB, c, "course.delete", "courses", id.String(), nil)

	return helper.Success(c, "Course deleted", nil)
}
