package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	QuestionTypeSingleChoice   = "single_choice"
	QuestionTypeMultipleChoice = "multiple_choice"
)

// QuestionChoice is one answer option. Stored inside the jsonb choices column;
// IsCorrect never leaves the server except in staff responses.
type QuestionChoice struct {
	Label     string `json:"label"` // A/B/C/D...
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionModel struct {
	QuestionID   uuid.UUID `gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"question_id"`
	QuestionText string    `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionType string    `gorm:"column:question_type;type:varchar(20);not null;default:'single_choice'" json:"question_type"`

	QuestionChoices []QuestionChoice `gorm:"column:question_choices;type:jsonb;serializer:json" json:"question_choices"`

	QuestionExplanation string `gorm:"column:question_explanation;type:text" json:"question_explanation"`
	QuestionCategory    string `gorm:"column:question_category;type:varchar(100);index" json:"question_category"`
	QuestionIsActive    bool   `gorm:"column:question_is_active;not null;default:true" json:"question_is_active"`

	QuestionCreatedAt time.Time      `gorm:"column:question_created_at;type:timestamptz;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time      `gorm:"column:question_updated_at;type:timestamptz;autoUpdateTime" json:"question_updated_at"`
	QuestionDeletedAt gorm.DeletedAt `gorm:"column:question_deleted_at;type:timestamptz;index" json:"question_deleted_at,omitempty"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

// CorrectLabels returns the labels flagged correct, in choice order.
func (q *QuestionModel) CorrectLabels() []string {
	var out []string
	for _, ch := range q.QuestionChoices {
		if ch.IsCorrect {
			out = append(out, ch.Label)
		}
	}
	return out
}
