package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RegistrationStatusRegistered = "registered"
	RegistrationStatusCancelled  = "cancelled"
)

type RegistrationModel struct {
	RegistrationID         uuid.UUID `gorm:"column:registration_id;type:uuid;default:gen_random_uuid();primaryKey" json:"registration_id"`
	RegistrationScheduleID uuid.UUID `gorm:"column:registration_schedule_id;type:uuid;not null;uniqueIndex:ux_registrations_schedule_student;index:idx_registrations_schedule_id" json:"registration_schedule_id"`
	RegistrationStudentID  uuid.UUID `gorm:"column:registration_student_id;type:uuid;not null;uniqueIndex:ux_registrations_schedule_student" json:"registration_student_id"`

	RegistrationStatus string `gorm:"column:registration_status;type:varchar(20);not null;default:'registered'" json:"registration_status"`

	RegistrationCreatedAt time.Time      `gorm:"column:registration_created_at;type:timestamptz;autoCreateTime" json:"registration_created_at"`
	RegistrationUpdatedAt time.Time      `gorm:"column:registration_updated_at;type:timestamptz;autoUpdateTime" json:"registration_updated_at"`
	RegistrationDeletedAt gorm.DeletedAt `gorm:"column:registration_deleted_at;type:timestamptz;index" json:"registration_deleted_at,omitempty"`
}

func (RegistrationModel) TableName() string {
	return "schedule_registrations"
}
