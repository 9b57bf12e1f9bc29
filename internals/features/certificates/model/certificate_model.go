package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CertificateModel struct {
	CertificateID           uuid.UUID `gorm:"column:certificate_id;type:uuid;default:gen_random_uuid();primaryKey" json:"certificate_id"`
	CertificateEnrollmentID uuid.UUID `gorm:"column:certificate_enrollment_id;type:uuid;not null;uniqueIndex:ux_certificates_enrollment" json:"certificate_enrollment_id"`
	CertificateStudentID    uuid.UUID `gorm:"column:certificate_student_id;type:uuid;not null;index:idx_certificates_student_id" json:"certificate_student_id"`
	CertificateCourseID     uuid.UUID `gorm:"column:certificate_course_id;type:uuid;not null" json:"certificate_course_id"`

	CertificateNumber           string `gorm:"column:certificate_number;type:varchar(50);not null;uniqueIndex:ux_certificates_number" json:"certificate_number"`
	CertificateVerificationCode string `gorm:"column:certificate_verification_code;type:varchar(40);not null;uniqueIndex:ux_certificates_verification_code" json:"certificate_verification_code"`

	CertificateStudentName string `gorm:"column:certificate_student_name;type:varchar(100);not null" json:"certificate_student_name"`
	CertificateCourseTitle string `gorm:"column:certificate_course_title;type:varchar(255);not null" json:"certificate_course_title"`

	CertificateIssuedAt  time.Time      `gorm:"column:certificate_issued_at;type:timestamptz;autoCreateTime" json:"certificate_issued_at"`
	CertificateCreatedAt time.Time      `gorm:"column:certificate_created_at;type:timestamptz;autoCreateTime" json:"certificate_created_at"`
	CertificateUpdatedAt time.Time      `gorm:"column:certificate_updated_at;type:timestamptz;autoUpdateTime" json:"certificate_updated_at"`
	CertificateDeletedAt gorm.DeletedAt `gorm:"column:certificate_deleted_at;type:timestamptz;index" json:"certificate_deleted_at,omitempty"`
}

func (CertificateModel) TableName() string {
	return "certificates"
}
