package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	questionModel "mengemudiku_backend/internals/features/exams/questions/model"
)

const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusCompleted  = "completed"
	AttemptStatusExpired    = "expired"
)

// SnapshotQuestion is a question frozen at attempt start. Later edits or
// deletions of the bank question never touch a running attempt.
type SnapshotQuestion struct {
	QuestionID      uuid.UUID                      `json:"question_id"`
	QuestionText    string                         `json:"question_text"`
	QuestionType    string                         `json:"question_type"`
	QuestionChoices []questionModel.QuestionChoice `json:"question_choices"`
}

// CorrectLabels returns the labels flagged correct, in choice order.
func (q SnapshotQuestion) CorrectLabels() []string {
	var out []string
	for _, ch := range q.QuestionChoices {
		if ch.IsCorrect {
			out = append(out, ch.Label)
		}
	}
	return out
}

// AttemptAnswer maps a snapshot question to the labels the student picked.
type AttemptAnswer struct {
	QuestionID     uuid.UUID `json:"question_id"`
	SelectedLabels []string  `json:"selected_labels"`
	IsCorrect      bool      `json:"is_correct"`
}

type TestAttemptModel struct {
	TestAttemptID         uuid.UUID `gorm:"column:test_attempt_id;type:uuid;default:gen_random_uuid();primaryKey" json:"test_attempt_id"`
	TestAttemptTemplateID uuid.UUID `gorm:"column:test_attempt_template_id;type:uuid;not null;index:idx_test_attempts_template_id" json:"test_attempt_template_id"`
	TestAttemptStudentID  uuid.UUID `gorm:"column:test_attempt_student_id;type:uuid;not null;index:idx_test_attempts_student_id" json:"test_attempt_student_id"`

	TestAttemptStatus string `gorm:"column:test_attempt_status;type:varchar(20);not null;default:'in_progress'" json:"test_attempt_status"`

	TestAttemptSnapshot []SnapshotQuestion `gorm:"column:test_attempt_snapshot;type:jsonb;serializer:json" json:"-"`
	TestAttemptAnswers  []AttemptAnswer    `gorm:"column:test_attempt_answers;type:jsonb;serializer:json" json:"-"`

	TestAttemptScore  int  `gorm:"column:test_attempt_score;not null;default:0" json:"test_attempt_score"`
	TestAttemptPassed bool `gorm:"column:test_attempt_passed;not null;default:false" json:"test_attempt_passed"`

	TestAttemptStartedAt   time.Time  `gorm:"column:test_attempt_started_at;type:timestamptz;autoCreateTime" json:"test_attempt_started_at"`
	TestAttemptExpiresAt   *time.Time `gorm:"column:test_attempt_expires_at;type:timestamptz" json:"test_attempt_expires_at,omitempty"`
	TestAttemptSubmittedAt *time.Time `gorm:"column:test_attempt_submitted_at;type:timestamptz" json:"test_attempt_submitted_at,omitempty"`

	TestAttemptCreatedAt time.Time      `gorm:"column:test_attempt_created_at;type:timestamptz;autoCreateTime" json:"test_attempt_created_at"`
	TestAttemptUpdatedAt time.Time      `gorm:"column:test_attempt_updated_at;type:timestamptz;autoUpdateTime" json:"test_attempt_updated_at"`
	TestAttemptDeletedAt gorm.DeletedAt `gorm:"column:test_attempt_deleted_at;type:timestamptz;index" json:"test_attempt_deleted_at,omitempty"`
}

func (TestAttemptModel) TableName() string {
	return "test_attempts"
}
