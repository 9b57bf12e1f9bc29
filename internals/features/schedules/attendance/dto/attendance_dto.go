package dto

import (
	"time"

	"github.com/google/uuid"

	"mengemudiku_backend/internals/features/schedules/attendance/model"
)

type MarkAttendanceRequest struct {
	AttendanceRegistrationID uuid.UUID `json:"attendance_registration_id" validate:"required"`
	AttendanceStatus         string    `json:"attendance_status" validate:"required,oneof=present absent late excused"`
	AttendanceNote           string    `json:"attendance_note" validate:"omitempty,max=500"`
}

type AttendanceResponse struct {
	AttendanceID             uuid.UUID `json:"attendance_id"`
	AttendanceRegistrationID uuid.UUID `json:"attendance_registration_id"`
	AttendanceMarkedByID     uuid.UUID `json:"attendance_marked_by_id"`
	AttendanceStatus         string    `json:"attendance_status"`
	AttendanceNote           string    `json:"attendance_note"`
	AttendanceUpdatedAt      time.Time `json:"attendance_updated_at"`
}

func ToAttendanceResponse(m *model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:             m.AttendanceID,
		AttendanceRegistrationID: m.AttendanceRegistrationID,
		AttendanceMarkedByID:     m.AttendanceMarkedByID,
		AttendanceStatus:         m.AttendanceStatus,
		AttendanceNote:           m.AttendanceNote,
		AttendanceUpdatedAt:      m.AttendanceUpdatedAt,
	}
}

func ToAttendanceResponses(ms []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToAttendanceResponse(&ms[i]))
	}
	return out
}
