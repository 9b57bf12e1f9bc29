package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "mengemudiku_backend/internals/features/audit/audit_logs/service"
	courseModel "mengemudiku_backend/internals/features/courses/courses/model"
	"mengemudiku_backend/internals/features/courses/enrollments/dto"
	"mengemudiku_backend/internals/features/courses/enrollments/model"
	helper "mengemudiku_backend/internals/helpers"
)

var validate = validator.New()

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

// 🟢 POST /api/u/enrollments — student enrolls into a course.
// Free courses activate immediately; paid ones wait for the payment webhook.
func (ctrl *EnrollmentController) CreateEnrollment(c *fiber.Ctx) error {
	studentID := helper.GetUserUUID(c)
	if studentID == uuid.Nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.Where("course_id = ? AND course_is_active = true", req.EnrollmentCourseID).
		First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	enrollment := model.EnrollmentModel{
		EnrollmentStudentID: studentID,
		EnrollmentCourseID:  course.CourseID,
		EnrollmentStatus:    model.EnrollmentStatusPendingPayment,
	}
	if course.CoursePrice == 0 {
		enrollment.EnrollmentStatus = model.EnrollmentStatusActive
	}

	if err := ctrl.DB.Create(&enrollment).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.Error(c, fiber.StatusConflict, "Already enrolled in this course")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create enrollment")
	}

	auditService.Record(ctrl.DB, c, "enrollment.create", "course_enrollments",
		enrollment.EnrollmentID.String(), req)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Enrollment created",
		dto.ToEnrollmentResponse(&enrollment))
}

// 🟢 GET /api/u/enrollments — my enrollments
func (ctrl *EnrollmentController) GetMyEnrollments(c *fiber.Ctx) error {
	studentID := helper.GetUserUUID(c)
	if studentID == uuid.Nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var enrollments []model.EnrollmentModel
	if err := ctrl.DB.Where("enrollment_student_id = ?", studentID).
		Order("enrollment_created_at DESC").
		Find(&enrollments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	return helper.Success(c, "Enrollments fetched", dto.ToEnrollmentResponses(enrollments))
}

// 🟢 GET /api/a/courses/:course_id/enrollments
func (ctrl *EnrollmentController) GetEnrollmentsByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}

	paging := helper.ResolvePaging(c, 50, 500)

	q := ctrl.DB.Model(&model.EnrollmentModel{}).Where("enrollment_course_id = ?", courseID)
	if status := c.Query("status"); status != "" {
		q = q.Where("enrollment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count enrollments")
	}

	var enrollments []model.EnrollmentModel
	if err := q.Order("enrollment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&enrollments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	return helper.SuccessWithPagination(c, "Enrollments fetched",
		dto.ToEnrollmentResponses(enrollments), helper.BuildPagination(paging, total, len(enrollments)))
}

// 🟢 PATCH /api/a/enrollments/:id/cancel
func (ctrl *EnrollmentController) CancelEnrollment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid enrollment id")
	}

	var enrollment model.EnrollmentModel
	if err := ctrl.DB.First(&enrollment, "enrollment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}
	if enrollment.EnrollmentStatus == model.EnrollmentStatusCompleted {
		return helper.Error(c, fiber.StatusConflict, "Completed enrollment cannot be cancelled")
	}

	if err := ctrl.DB.Model(&enrollment).
		Update("enrollment_status", model.EnrollmentStatusCancelled).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to cancel enrollment")
	}

	auditService.Record(ctrl.DB, c, "enrollment.cancel", "course_enrollments", id.String(), nil)

	return helper.Success(c, "Enrollment cancelled", dto.ToEnrollmentResponse(&enrollment))
}
