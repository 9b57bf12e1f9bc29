package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	PostID      uuid.UUID `gorm:"column:post_id;type:uuid;default:gen_random_uuid();primaryKey" json:"post_id"`
	PostTopicID uuid.UUID `gorm:"column:post_topic_id;type:uuid;not null;index:idx_posts_topic_id" json:"post_topic_id"`
	PostTitle   string    `gorm:"column:post_title;type:varchar(255);not null" json:"post_title"`
	PostContent string    `gorm:"column:post_content;type:text" json:"post_content"`

	PostIsPublished bool `gorm:"column:post_is_published;not null;default:false" json:"post_is_published"`

	PostCreatedAt time.Time      `gorm:"column:post_created_at;type:timestamptz;autoCreateTime" json:"post_created_at"`
	PostUpdatedAt time.Time      `gorm:"column:post_updated_at;type:timestamptz;autoUpdateTime" json:"post_updated_at"`
	PostDeletedAt gorm.DeletedAt `gorm:"column:post_deleted_at;type:timestamptz;index" json:"post_deleted_at,omitempty"`
}

func (PostModel) TableName() string {
	return "posts"
}
