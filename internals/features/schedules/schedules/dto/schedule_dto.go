package dto

import (
	"time"

	"github.com/google/uuid"

	"mengemudiku_backend/internals/features/schedules/schedules/model"
)

// ============================
// Request DTOs
// ============================

type CreateScheduleRequest struct {
	ScheduleCourseID     uuid.UUID `json:"schedule_course_id" validate:"required"`
	ScheduleInstructorID uuid.UUID `json:"schedule_instructor_id" validate:"required"`
	ScheduleTitle        string    `json:"schedule_title" validate:"required,min=3,max=200"`
	ScheduleLocation     string    `json:"schedule_location" validate:"omitempty,max=200"`
	ScheduleStartAt      time.Time `json:"schedule_start_at" validate:"required"`
	ScheduleEndAt        time.Time `json:"schedule_end_at" validate:"required"`
	ScheduleCapacity     int       `json:"schedule_capacity" validate:"required,min=1,max=500"`
}

type UpdateScheduleRequest struct {
	ScheduleInstructorID *uuid.UUID `json:"schedule_instructor_id,omitempty"`
	ScheduleTitle        *string    `json:"schedule_title,omitempty" validate:"omitempty,min=3,max=200"`
	ScheduleLocation     *string    `json:"schedule_location,omitempty" validate:"omitempty,max=200"`
	ScheduleStartAt      *time.Time `json:"schedule_start_at,omitempty"`
	ScheduleEndAt        *time.Time `json:"schedule_end_at,omitempty"`
	ScheduleCapacity     *int       `json:"schedule_capacity,omitempty" validate:"omitempty,min=1,max=500"`
	ScheduleIsActive     *bool      `json:"schedule_is_active,omitempty"`
}

// ============================
// Response DTO
// ============================

type ScheduleResponse struct {
	ScheduleID           uuid.UUID `json:"schedule_id"`
	ScheduleCourseID     uuid.UUID `json:"schedule_course_id"`
	ScheduleInstructorID uuid.UUID `json:"schedule_instructor_id"`
	ScheduleTitle        string    `json:"schedule_title"`
	ScheduleLocation     string    `json:"schedule_location"`
	ScheduleStartAt      time.Time `json:"schedule_start_at"`
	ScheduleEndAt        time.Time `json:"schedule_end_at"`
	ScheduleCapacity     int       `json:"schedule_capacity"`
	ScheduleRegistered   int64     `json:"schedule_registered"`
	ScheduleIsActive     bool      `json:"schedule_is_active"`
	ScheduleCreatedAt    time.Time `json:"schedule_created_at"`
}

// ============================
// Converters
// ============================

func (r CreateScheduleRequest) ToModel() *model.ScheduleModel {
	return &model.ScheduleModel{
		ScheduleCourseID:     r.ScheduleCourseID,
		ScheduleInstructorID: r.ScheduleInstructorID,
		ScheduleTitle:        r.ScheduleTitle,
		ScheduleLocation:     r.ScheduleLocation,
		ScheduleStartAt:      r.ScheduleStartAt,
		ScheduleEndAt:        r.ScheduleEndAt,
		ScheduleCapacity:     r.ScheduleCapacity,
		ScheduleIsActive:     true,
	}
}

func ToScheduleResponse(m *model.ScheduleModel, registered int64) ScheduleResponse {
	return ScheduleResponse{
		ScheduleID:           m.ScheduleID,
		ScheduleCourseID:     m.ScheduleCourseID,
		ScheduleInstructorID: m.ScheduleInstructorID,
		ScheduleTitle:        m.ScheduleTitle,
		ScheduleLocation:     m.ScheduleLocation,
		ScheduleStartAt:      m.ScheduleStartAt,
		ScheduleEndAt:        m.ScheduleEndAt,
		ScheduleCapacity:     m.ScheduleCapacity,
		ScheduleRegistered:   registered,
		ScheduleIsActive:     m.ScheduleIsActive,
		ScheduleCreatedAt:    m.ScheduleCreatedAt,
	}
}
