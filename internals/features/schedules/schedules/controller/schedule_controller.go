package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "mengemudiku_backend/internals/features/audit/audit_logs/service"
	courseModel "mengemudiku_backend/internals/features/courses/courses/model"
	registrationModel "mengemudiku_backend/internals/features/schedules/registrations/model"
	"mengemudiku_backend/internals/features/schedules/schedules/dto"
	"mengemudiku_backend/internals/features/schedules/schedules/model"
	helper "mengemudiku_backend/internals/helpers"
)

var validate = validator.New()

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

func (ctrl *ScheduleController) countRegistered(scheduleID uuid.UUID) (int64, error) {
	var count int64
	err := ctrl.DB.Model(&registrationModel.RegistrationModel{}).
		Where("registration_schedule_id = ? AND registration_status = ?",
			scheduleID, registrationModel.RegistrationStatusRegistered).
		Count(&count).Error
	return count, err
}

// 🟢 POST /api/i/schedules
func (ctrl *ScheduleController) CreateSchedule(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.ScheduleEndAt.After(req.ScheduleStartAt) {
		return helper.Error(c, fiber.StatusBadRequest, "schedule_end_at must be after schedule_start_at")
	}

	var count int64
	if err := ctrl.DB.Model(&courseModel.CourseModel{}).
		Where("course_id = ?", req.ScheduleCourseID).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check course")
	}
	if count == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Course not found")
	}

	schedule := req.ToModel()
	if err := ctrl.DB.Create(schedule).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create schedule")
	}

	auditService.Record(ctrl.DB, c, "schedule.create", "schedules", schedule.ScheduleID.String(), req)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Schedule created", dto.ToScheduleResponse(schedule, 0))
}

// 🟢 GET /api/u/courses/:course_id/schedules?upcoming=true
func (ctrl *ScheduleController) GetSchedulesByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}

	q := ctrl.DB.Where("schedule_course_id = ? AND schedule_is_active = ?", courseID, true)
	if c.Query("upcoming") == "true" {
		q = q.Where("schedule_start_at > NOW()")
	}

	var schedules []model.ScheduleModel
	if err := q.Order("schedule_start_at ASC").Find(&schedules).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch schedules")
	}

	out := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		registered, err := ctrl.countRegistered(schedules[i].ScheduleID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to count registrations")
		}
		out = append(out, dto.ToScheduleResponse(&schedules[i], registered))
	}

	return helper.Success(c, "Schedules fetched", out)
}

// 🟢 GET /api/u/schedules/:id
func (ctrl *ScheduleController) GetScheduleByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var schedule model.ScheduleModel
	if err := ctrl.DB.First(&schedule, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Schedule not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch schedule")
	}

	registered, err := ctrl.countRegistered(schedule.ScheduleID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count registrations")
	}

	return helper.Success(c, "Schedule fetched", dto.ToScheduleResponse(&schedule, registered))
}

// 🟢 GET /api/i/schedules (own schedules for instructors, all for admin)
func (ctrl *ScheduleController) GetMySchedules(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ScheduleModel{})
	if helper.GetUserRole(c) != "admin" {
		q = q.Where("schedule_instructor_id = ?", helper.GetUserUUID(c))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count schedules")
	}

	var schedules []model.ScheduleModel
	if err := q.Order("schedule_start_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&schedules).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch schedules")
	}

	out := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		registered, err := ctrl.countRegistered(schedules[i].ScheduleID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to count registrations")
		}
		out = append(out, dto.ToScheduleResponse(&schedules[i], registered))
	}

	return helper.SuccessWithPagination(c, "Schedules fetched",
		out, helper.BuildPagination(paging, total, len(schedules)))
}

// 🟢 PUT /api/i/schedules/:id
func (ctrl *ScheduleController) UpdateSchedule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var req dto.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var schedule model.ScheduleModel
	if err := ctrl.DB.First(&schedule, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Schedule not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch schedule")
	}

	if req.ScheduleInstructorID != nil {
		schedule.ScheduleInstructorID = *req.ScheduleInstructorID
	}
	if req.ScheduleTitle != nil {
		schedule.ScheduleTitle = *req.ScheduleTitle
	}
	if req.ScheduleLocation != nil {
		schedule.ScheduleLocation = *req.ScheduleLocation
	}
	if req.ScheduleStartAt != nil {
		schedule.ScheduleStartAt = *req.ScheduleStartAt
	}
	if req.ScheduleEndAt != nil {
		schedule.ScheduleEndAt = *req.ScheduleEndAt
	}
	if req.ScheduleIsActive != nil {
		schedule.ScheduleIsActive = *req.ScheduleIsActive
	}
	if !schedule.ScheduleEndAt.After(schedule.ScheduleStartAt) {
		return helper.Error(c, fiber.StatusBadRequest, "schedule_end_at must be after schedule_start_at")
	}

	// capacity can only shrink down to the current registration count
	if req.ScheduleCapacity != nil {
		registered, err := ctrl.countRegistered(schedule.ScheduleID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to count registrations")
		}
		if int64(*req.ScheduleCapacity) < registered {
			return helper.Error(c, fiber.StatusConflict, "Capacity cannot be lower than current registrations")
		}
		schedule.ScheduleCapacity = *req.ScheduleCapacity
	}

	if err := ctrl.DB.Save(&schedule).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update schedule")
	}

	auditService.Record(ctrl.DB, c, "schedule.update", "schedules", schedule.ScheduleID.String(), req)

	registered, _ := ctrl.countRegistered(schedule.ScheduleID)
	return helper.Success(c, "Schedule updated", dto.ToScheduleResponse(&schedule, registered))
}

// 🟢 DELETE /api/i/schedules/:id
func (ctrl *ScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	res := ctrl.DB.Delete(&model.ScheduleModel{}, "schedule_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete schedule")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Schedule not found")
	}

	auditService.Record(ctrl.DB, c, "schedule.delete", "schedules", id.String(), nil)

	return helper.Success(c, "Schedule deleted", nil)
}
