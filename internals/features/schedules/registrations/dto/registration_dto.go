package dto

import (
	"time"

	"github.com/google/uuid"

	"mengemudiku_backend/internals/features/schedules/registrations/model"
)

type CreateRegistrationRequest struct {
	RegistrationScheduleID uuid.UUID `json:"registration_schedule_id" validate:"required"`
}

type RegistrationResponse struct {
	RegistrationID         uuid.UUID `json:"registration_id"`
	RegistrationScheduleID uuid.UUID `json:"registration_schedule_id"`
	RegistrationStudentID  uuid.UUID `json:"registration_student_id"`
	RegistrationStatus     string    `json:"registration_status"`
	RegistrationCreatedAt  time.Time `json:"registration_created_at"`
}

func ToRegistrationResponse(m *model.RegistrationModel) RegistrationResponse {
	return RegistrationResponse{
		RegistrationID:         m.RegistrationID,
		RegistrationScheduleID: m.RegistrationScheduleID,
		RegistrationStudentID:  m.RegistrationStudentID,
		RegistrationStatus:     m.RegistrationStatus,
		RegistrationCreatedAt:  m.RegistrationCreatedAt,
	}
}

func ToRegistrationResponses(ms []model.RegistrationModel) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToRegistrationResponse(&ms[i]))
	}
	return out
}
