package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	auditService "mengemudiku_backend/internals/features/audit/audit_logs/service"
	enrollmentService "mengemudiku_backend/internals/features/courses/enrollments/service"
	"mengemudiku_backend/internals/features/schedules/registrations/dto"
	"mengemudiku_backend/internals/features/schedules/registrations/model"
	scheduleModel "mengemudiku_backend/internals/features/schedules/schedules/model"
	helper "mengemudiku_backend/internals/helpers"
)

var validate = validator.New()

var (
	errScheduleFull     = errors.New("schedule is full")
	errScheduleInactive = errors.New("schedule is not active")
	errSchedulePast     = errors.New("schedule has already started")
)

type RegistrationController struct {
	DB *gorm.DB
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db}
}

// 🟢 POST /api/u/schedule-registrations
// The capacity check runs inside a transaction with the schedule row
// locked, so two concurrent registrations cannot both pass the check.
func (ctrl *RegistrationController) CreateRegistration(c *fiber.Ctx) error {
	studentID := helper.GetUserUUID(c)
	if studentID == uuid.Nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var registration model.RegistrationModel
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var schedule scheduleModel.ScheduleModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&schedule, "schedule_id = ?", req.RegistrationScheduleID).Error; err != nil {
			return err
		}
		if !schedule.ScheduleIsActive {
			return errScheduleInactive
		}
		if time.Now().After(schedule.ScheduleStartAt) {
			return errSchedulePast
		}

		enrolled, err := enrollmentService.HasActiveEnrollment(tx, studentID, schedule.ScheduleCourseID)
		if err != nil {
			return err
		}
		if !enrolled {
			return gorm.ErrRecordNotFound
		}

		var registered int64
		if err := tx.Model(&model.RegistrationModel{}).
			Where("registration_schedule_id = ? AND registration_status = ?",
				schedule.ScheduleID, model.RegistrationStatusRegistered).
			Count(&registered).Error; err != nil {
			return err
		}
		if registered >= int64(schedule.ScheduleCapacity) {
			return errScheduleFull
		}

		registration = model.RegistrationModel{
			RegistrationScheduleID: schedule.ScheduleID,
			RegistrationStudentID:  studentID,
			RegistrationStatus:     model.RegistrationStatusRegistered,
		}
		return tx.Create(&registration).Error
	})

	switch {
	case err == nil:
		// fallthrough to success
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.Error(c, fiber.StatusForbidden, "Schedule not found or you are not enrolled in its course")
	case errors.Is(err, errScheduleFull):
		return helper.Error(c, fiber.StatusConflict, "Schedule is full")
	case errors.Is(err, errScheduleInactive):
		return helper.Error(c, fiber.StatusConflict, "Schedule is not active")
	case errors.Is(err, errSchedulePast):
		return helper.Error(c, fiber.StatusConflict, "Schedule has already started")
	case strings.Contains(err.Error(), "duplicate key"):
		return helper.Error(c, fiber.StatusConflict, "Already registered for this schedule")
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to register")
	}

	auditService.Record(ctrl.DB, c, "schedule_registration.create", "schedule_registrations",
		registration.RegistrationID.String(), req)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registered", dto.ToRegistrationResponse(&registration))
}

// 🟢 GET /api/u/schedule-registrations
func (ctrl *RegistrationController) GetMyRegistrations(c *fiber.Ctx) error {
	studentID := helper.GetUserUUID(c)
	if studentID == uuid.Nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var registrations []model.RegistrationModel
	if err := ctrl.DB.
		Where("registration_student_id = ?", studentID).
		Order("registration_created_at DESC").
		Find(&registrations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}

	return helper.Success(c, "Registrations fetched", dto.ToRegistrationResponses(registrations))
}

// 🟢 GET /api/i/schedules/:schedule_id/registrations
func (ctrl *RegistrationController) GetRegistrationsBySchedule(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("schedule_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var registrations []model.RegistrationModel
	if err := ctrl.DB.
		Where("registration_schedule_id = ?", scheduleID).
		Order("registration_created_at ASC").
		Find(&registrations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}

	return helper.Success(c, "Registrations fetched", dto.ToRegistrationResponses(registrations))
}

// 🟢 PATCH /api/u/schedule-registrations/:id/cancel
// Cancelling frees the seat; registering again later re-runs the capacity check.
func (ctrl *RegistrationController) CancelRegistration(c *fiber.Ctx) error {
	studentID := helper.GetUserUUID(c)
	if studentID == uuid.Nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	var registration model.RegistrationModel
	if err := ctrl.DB.First(&registration, "registration_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Registration not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch registration")
	}
	if registration.RegistrationStudentID != studentID {
		return helper.Error(c, fiber.StatusForbidden, "This registration belongs to another student")
	}
	if registration.RegistrationStatus == model.RegistrationStatusCancelled {
		return helper.Error(c, fiber.StatusConflict, "Registration is already cancelled")
	}

	var schedule scheduleModel.ScheduleModel
	if err := ctrl.DB.First(&schedule, "schedule_id = ?", registration.RegistrationScheduleID).Error; err == nil {
		if time.Now().After(schedule.ScheduleStartAt) {
			return helper.Error(c, fiber.StatusConflict, "Schedule has already started")
		}
	}

	if err := ctrl.DB.Model(&registration).
		Update("registration_status", model.RegistrationStatusCancelled).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to cancel registration")
	}

	auditService.Record(ctrl.DB, c, "schedule_registration.cancel", "schedule_registrations", id.String(), nil)

	return helper.Success(c, "Registration cancelled", nil)
}
