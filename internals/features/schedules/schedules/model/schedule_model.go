package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleModel struct {
	ScheduleID           uuid.UUID `gorm:"column:schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"schedule_id"`
	ScheduleCourseID     uuid.UUID `gorm:"column:schedule_course_id;type:uuid;not null;index:idx_schedules_course_id" json:"schedule_course_id"`
	ScheduleInstructorID uuid.UUID `gorm:"column:schedule_instructor_id;type:uuid;not null;index:idx_schedules_instructor_id" json:"schedule_instructor_id"`

	ScheduleTitle    string `gorm:"column:schedule_title;type:varchar(200);not null" json:"schedule_title"`
	ScheduleLocation string `gorm:"column:schedule_location;type:varchar(200)" json:"schedule_location"`

	ScheduleStartAt time.Time `gorm:"column:schedule_start_at;type:timestamptz;not null;index:idx_schedules_start_at" json:"schedule_start_at"`
	ScheduleEndAt   time.Time `gorm:"column:schedule_end_at;type:timestamptz;not null" json:"schedule_end_at"`

	ScheduleCapacity int  `gorm:"column:schedule_capacity;not null;default:1" json:"schedule_capacity"`
	ScheduleIsActive bool `gorm:"column:schedule_is_active;not null;default:true" json:"schedule_is_active"`

	ScheduleCreatedAt time.Time      `gorm:"column:schedule_created_at;type:timestamptz;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt time.Time      `gorm:"column:schedule_updated_at;type:timestamptz;autoUpdateTime" json:"schedule_updated_at"`
	ScheduleDeletedAt gorm.DeletedAt `gorm:"column:schedule_deleted_at;type:timestamptz;index" json:"schedule_deleted_at,omitempty"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}
