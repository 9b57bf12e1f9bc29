package dto

import (
	"time"

	"github.com/google/uuid"

	"mengemudiku_backend/internals/features/certificates/model"
)

type IssueCertificateRequest struct {
	CertificateEnrollmentID uuid.UUID `json:"certificate_enrollment_id" validate:"required"`
}

type CertificateResponse struct {
	CertificateID               uuid.UUID `json:"certificate_id"`
	CertificateEnrollmentID     uuid.UUID `json:"certificate_enrollment_id"`
	CertificateNumber           string    `json:"certificate_number"`
	CertificateVerificationCode string    `json:"certificate_verification_code"`
	CertificateStudentName      string    `json:"certificate_student_name"`
	CertificateCourseTitle      string    `json:"certificate_course_title"`
	CertificateIssuedAt         time.Time `json:"certificate_issued_at"`
}

// VerificationResponse is the public verify view. It omits the
// verification code itself so the URL is the only place it appears.
type VerificationResponse struct {
	CertificateNumber      string    `json:"certificate_number"`
	CertificateStudentName string    `json:"certificate_student_name"`
	CertificateCourseTitle string    `json:"certificate_course_title"`
	CertificateIssuedAt    time.Time `json:"certificate_issued_at"`
}

func ToCertificateResponse(m *model.CertificateModel) CertificateResponse {
	return CertificateResponse{
		CertificateID:               m.CertificateID,
		CertificateEnrollmentID:     m.CertificateEnrollmentID,
		CertificateNumber:           m.CertificateNumber,
		CertificateVerificationCode: m.CertificateVerificationCode,
		CertificateStudentName:      m.CertificateStudentName,
		CertificateCourseTitle:      m.CertificateCourseTitle,
		CertificateIssuedAt:         m.CertificateIssuedAt,
	}
}

func ToCertificateResponses(ms []model.CertificateModel) []CertificateResponse {
	out := make([]CertificateResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToCertificateResponse(&ms[i]))
	}
	return out
}

func ToVerificationResponse(m *model.CertificateModel) VerificationResponse {
	return VerificationResponse{
		CertificateNumber:      m.CertificateNumber,
		CertificateStudentName: m.CertificateStudentName,
		CertificateCourseTitle: m.CertificateCourseTitle,
		CertificateIssuedAt:    m.CertificateIssuedAt,
	}
}
