package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TestModeRandom = "random"
	TestModeManual = "manual"
)

type TestTemplateModel struct {
	TestTemplateID       uuid.UUID `gorm:"column:test_template_id;type:uuid;default:gen_random_uuid();primaryKey" json:"test_template_id"`
	TestTemplateCourseID uuid.UUID `gorm:"column:test_template_course_id;type:uuid;not null;index:idx_test_templates_course_id" json:"test_template_course_id"`

	TestTemplateTitle string `gorm:"column:test_template_title;type:varchar(200);not null" json:"test_template_title"`
	TestTemplateMode  string `gorm:"column:test_template_mode;type:varchar(10);not null;default:'random'" json:"test_template_mode"`

	// random mode: draw this many from the active pool (optionally one category)
	TestTemplateQuestionCount int    `gorm:"column:test_template_question_count;not null;default:0" json:"test_template_question_count"`
	TestTemplateCategory      string `gorm:"column:test_template_category;type:varchar(100)" json:"test_template_category"`

	// manual mode: fixed question ids served in this order
	TestTemplateQuestionIDs []uuid.UUID `gorm:"column:test_template_question_ids;type:jsonb;serializer:json" json:"test_template_question_ids"`

	TestTemplatePassThreshold   int  `gorm:"column:test_template_pass_threshold;not null;default:70" json:"test_template_pass_threshold"`
	TestTemplateDurationMinutes int  `gorm:"column:test_template_duration_minutes;not null;default:0" json:"test_template_duration_minutes"`
	TestTemplateIsFinal         bool `gorm:"column:test_template_is_final;not null;default:false" json:"test_template_is_final"`
	TestTemplateIsActive        bool `gorm:"column:test_template_is_active;not null;default:true" json:"test_template_is_active"`

	TestTemplateCreatedAt time.Time      `gorm:"column:test_template_created_at;type:timestamptz;autoCreateTime" json:"test_template_created_at"`
	TestTemplateUpdatedAt time.Time      `gorm:"column:test_template_updated_at;type:timestamptz;autoUpdateTime" json:"test_template_updated_at"`
	TestTemplateDeletedAt gorm.DeletedAt `gorm:"column:test_template_deleted_at;type:timestamptz;index" json:"test_template_deleted_at,omitempty"`
}

func (TestTemplateModel) TableName() string {
	return "test_templates"
}
