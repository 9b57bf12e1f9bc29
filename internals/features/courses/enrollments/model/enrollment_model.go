package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EnrollmentStatusPendingPayment = "pending_payment"
	EnrollmentStatusActive         = "active"
	EnrollmentStatusCompleted      = "completed"
	EnrollmentStatusCancelled      = "cancelled"
)

type EnrollmentModel struct {
	EnrollmentID        uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`
	EnrollmentStudentID uuid.UUID `gorm:"column:enrollment_student_id;type:uuid;not null;uniqueIndex:ux_enrollments_student_course" json:"enrollment_student_id"`
	EnrollmentCourseID  uuid.UUID `gorm:"column:enrollment_course_id;type:uuid;not null;uniqueIndex:ux_enrollments_student_course;index:idx_enrollments_course_id" json:"enrollment_course_id"`

	EnrollmentStatus string `gorm:"column:enrollment_status;type:varchar(20);not null;default:'pending_payment'" json:"enrollment_status"`

	EnrollmentActivatedAt *time.Time `gorm:"column:enrollment_activated_at;type:timestamptz" json:"enrollment_activated_at,omitempty"`
	EnrollmentCompletedAt *time.Time `gorm:"column:enrollment_completed_at;type:timestamptz" json:"enrollment_completed_at,omitempty"`

	EnrollmentCreatedAt time.Time      `gorm:"column:enrollment_created_at;type:timestamptz;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time      `gorm:"column:enrollment_updated_at;type:timestamptz;autoUpdateTime" json:"enrollment_updated_at"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;type:timestamptz;index" json:"enrollment_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string {
	return "course_enrollments"
}
