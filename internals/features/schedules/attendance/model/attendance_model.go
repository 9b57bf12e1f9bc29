package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusLate    = "late"
	AttendanceStatusExcused = "excused"
)

var AllowedAttendanceStatuses = []string{
	AttendanceStatusPresent,
	AttendanceStatusAbsent,
	AttendanceStatusLate,
	AttendanceStatusExcused,
}

type AttendanceModel struct {
	AttendanceID             uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceRegistrationID uuid.UUID `gorm:"column:attendance_registration_id;type:uuid;not null;uniqueIndex:ux_attendance_registration" json:"attendance_registration_id"`
	AttendanceMarkedByID     uuid.UUID `gorm:"column:attendance_marked_by_id;type:uuid;not null" json:"attendance_marked_by_id"`

	AttendanceStatus string `gorm:"column:attendance_status;type:varchar(20);not null" json:"attendance_status"`
	AttendanceNote   string `gorm:"column:attendance_note;type:text" json:"attendance_note"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;type:timestamptz;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;type:timestamptz;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string {
	return "schedule_attendance"
}
