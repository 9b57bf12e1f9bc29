package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID          uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`
	CourseTitle       string    `gorm:"column:course_title;type:varchar(255);not null" json:"course_title"`
	CourseSlug        string    `gorm:"column:course_slug;type:varchar(100);not null;uniqueIndex" json:"course_slug"`
	CourseDescription string    `gorm:"column:course_description;type:text" json:"course_description"`

	// price in IDR, 0 = free course
	CoursePrice         int64 `gorm:"column:course_price;not null;default:0" json:"course_price"`
	CourseDurationHours int   `gorm:"column:course_duration_hours;not null;default:0" json:"course_duration_hours"`

	// license classes this course prepares for (A, C, B1, ...)
	CourseLicenseCategories pq.StringArray `gorm:"column:course_license_categories;type:text[]" json:"course_license_categories"`

	CourseInstructorID *uuid.UUID `gorm:"column:course_instructor_id;type:uuid;index" json:"course_instructor_id,omitempty"`
	CourseIsActive     bool       `gorm:"column:course_is_active;not null;default:true" json:"course_is_active"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;type:timestamptz;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;type:timestamptz;autoUpdateTime" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;type:timestamptz;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}
