package dto

import (
	"time"

	"github.com/google/uuid"

	"mengemudiku_backend/internals/features/courses/enrollments/model"
)

type EnrollmentResponse struct {
	EnrollmentID          uuid.UUID  `json:"enrollment_id"`
	EnrollmentStudentID   uuid.UUID  `json:"enrollment_student_id"`
	EnrollmentCourseID    uuid.UUID  `json:"enrollment_course_id"`
	EnrollmentStatus      string     `json:"enrollment_status"`
	EnrollmentActivatedAt *time.Time `json:"enrollment_activated_at,omitempty"`
	EnrollmentCompletedAt *time.Time `json:"enrollment_completed_at,omitempty"`
	EnrollmentCreatedAt   time.Time  `json:"enrollment_created_at"`
}

type CreateEnrollmentRequest struct {
	EnrollmentCourseID uuid.UUID `json:"enrollment_course_id" validate:"required"`
}

func ToEnrollmentResponse(m *model.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:          m.EnrollmentID,
		EnrollmentStudentID:   m.EnrollmentStudentID,
		EnrollmentCourseID:    m.EnrollmentCourseID,
		EnrollmentStatus:      m.EnrollmentStatus,
		EnrollmentActivatedAt: m.EnrollmentActivatedAt,
		EnrollmentCompletedAt: m.EnrollmentCompletedAt,
		EnrollmentCreatedAt:   m.EnrollmentCreatedAt,
	}
}

func ToEnrollmentResponses(ms []model.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToEnrollmentResponse(&ms[i]))
	}
	return out
}
