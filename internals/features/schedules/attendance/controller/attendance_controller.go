package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "mengemudiku_backend/internals/features/audit/audit_logs/service"
	"mengemudiku_backend/internals/features/schedules/attendance/dto"
	"mengemudiku_backend/internals/features/schedules/attendance/model"
	registrationModel "mengemudiku_backend/internals/features/schedules/registrations/model"
	helper "mengemudiku_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// 🟢 PUT /api/i/attendance
// Upsert: marking the same registration again overwrites the earlier mark.
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	markerID := helper.GetUserUUID(c)
	if markerID == uuid.Nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var registration registrationModel.RegistrationModel
	if err := ctrl.DB.First(&registration, "registration_id = ?", req.AttendanceRegistrationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Registration not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch registration")
	}
	if registration.RegistrationStatus != registrationModel.RegistrationStatusRegistered {
		return helper.Error(c, fiber.StatusConflict, "Cannot mark attendance for a cancelled registration")
	}

	var attendance model.AttendanceModel
	err := ctrl.DB.First(&attendance, "attendance_registration_id = ?", req.AttendanceRegistrationID).Error
	switch {
	case err == nil:
		attendance.AttendanceStatus = req.AttendanceStatus
		attendance.AttendanceNote = req.AttendanceNote
		attendance.AttendanceMarkedByID = markerID
		if err := ctrl.DB.Save(&attendance).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update attendance")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		attendance = model.AttendanceModel{
			AttendanceRegistrationID: req.AttendanceRegistrationID,
			AttendanceMarkedByID:     markerID,
			AttendanceStatus:         req.AttendanceStatus,
			AttendanceNote:           req.AttendanceNote,
		}
		if err := ctrl.DB.Create(&attendance).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to record attendance")
		}
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	auditService.Record(ctrl.DB, c, "attendance.mark", "schedule_attendance", attendance.AttendanceID.String(), req)

	return helper.Success(c, "Attendance recorded", dto.ToAttendanceResponse(&attendance))
}

// 🟢 GET /api/i/schedules/:schedule_id/attendance
func (ctrl *AttendanceController) GetAttendanceBySchedule(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("schedule_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var records []model.AttendanceModel
	if err := ctrl.DB.
		Joins("JOIN schedule_registrations ON schedule_registrations.registration_id = schedule_attendance.attendance_registration_id").
		Where("schedule_registrations.registration_schedule_id = ?", scheduleID).
		Find(&records).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	return helper.Success(c, "Attendance fetched", dto.ToAttendanceResponses(records))
}
