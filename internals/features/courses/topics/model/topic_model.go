package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TopicModel struct {
	TopicID       uuid.UUID `gorm:"column:topic_id;type:uuid;default:gen_random_uuid();primaryKey" json:"topic_id"`
	TopicCourseID uuid.UUID `gorm:"column:topic_course_id;type:uuid;not null;index:idx_topics_course_id;uniqueIndex:ux_topics_course_order" json:"topic_course_id"`
	TopicTitle    string    `gorm:"column:topic_title;type:varchar(255);not null" json:"topic_title"`

	// display position within the course, 1-based
	TopicOrder int `gorm:"column:topic_order;not null;uniqueIndex:ux_topics_course_order" json:"topic_order"`

	TopicCreatedAt time.Time      `gorm:"column:topic_created_at;type:timestamptz;autoCreateTime" json:"topic_created_at"`
	TopicUpdatedAt time.Time      `gorm:"column:topic_updated_at;type:timestamptz;autoUpdateTime" json:"topic_updated_at"`
	TopicDeletedAt gorm.DeletedAt `gorm:"column:topic_deleted_at;type:timestamptz;index" json:"topic_deleted_at,omitempty"`
}

func (TopicModel) TableName() string {
	return "topics"
}
