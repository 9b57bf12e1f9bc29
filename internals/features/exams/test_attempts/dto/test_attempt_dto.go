package dto

import (
	"time"

	"github.com/google/uuid"

	"mengemudiku_backend/internals/features/exams/test_attempts/model"
)

// ============================
// Request DTOs
// ============================

type StartAttemptRequest struct {
	TestTemplateID uuid.UUID `json:"test_template_id" validate:"required"`
}

type SubmitAnswerRequest struct {
	QuestionID     uuid.UUID `json:"question_id" validate:"required"`
	SelectedLabels []string  `json:"selected_labels" validate:"required,min=1"`
}

type SubmitAttemptRequest struct {
	Answers []SubmitAnswerRequest `json:"answers" validate:"required,dive"`
}

// ============================
// Response DTOs (student view, correct flags stripped)
// ============================

type AttemptChoice struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

type AttemptQuestion struct {
	QuestionID      uuid.UUID       `json:"question_id"`
	QuestionText    string          `json:"question_text"`
	QuestionType    string          `json:"question_type"`
	QuestionChoices []AttemptChoice `json:"question_choices"`
}

type AttemptResponse struct {
	TestAttemptID          uuid.UUID         `json:"test_attempt_id"`
	TestAttemptTemplateID  uuid.UUID         `json:"test_attempt_template_id"`
	TestAttemptStatus      string            `json:"test_attempt_status"`
	TestAttemptQuestions   []AttemptQuestion `json:"test_attempt_questions,omitempty"`
	TestAttemptStartedAt   time.Time         `json:"test_attempt_started_at"`
	TestAttemptExpiresAt   *time.Time        `json:"test_attempt_expires_at,omitempty"`
	TestAttemptSubmittedAt *time.Time        `json:"test_attempt_submitted_at,omitempty"`
}

type AttemptResultResponse struct {
	TestAttemptID          uuid.UUID             `json:"test_attempt_id"`
	TestAttemptStatus      string                `json:"test_attempt_status"`
	TestAttemptScore       int                   `json:"test_attempt_score"`
	TestAttemptPassed      bool                  `json:"test_attempt_passed"`
	TestAttemptAnswers     []model.AttemptAnswer `json:"test_attempt_answers"`
	TestAttemptSubmittedAt *time.Time            `json:"test_attempt_submitted_at,omitempty"`
}

// ============================
// Converters
// ============================

// ToAttemptResponse renders an attempt for the student: choices are
// served without their is_correct flags.
func ToAttemptResponse(m *model.TestAttemptModel) AttemptResponse {
	questions := make([]AttemptQuestion, 0, len(m.TestAttemptSnapshot))
	for _, q := range m.TestAttemptSnapshot {
		choices := make([]AttemptChoice, 0, len(q.QuestionChoices))
		for _, ch := range q.QuestionChoices {
			choices = append(choices, AttemptChoice{Label: ch.Label, Text: ch.Text})
		}
		questions = append(questions, AttemptQuestion{
			QuestionID:      q.QuestionID,
			QuestionText:    q.QuestionText,
			QuestionType:    q.QuestionType,
			QuestionChoices: choices,
		})
	}
	return AttemptResponse{
		TestAttemptID:          m.TestAttemptID,
		TestAttemptTemplateID:  m.TestAttemptTemplateID,
		TestAttemptStatus:      m.TestAttemptStatus,
		TestAttemptQuestions:   questions,
		TestAttemptStartedAt:   m.TestAttemptStartedAt,
		TestAttemptExpiresAt:   m.TestAttemptExpiresAt,
		TestAttemptSubmittedAt: m.TestAttemptSubmittedAt,
	}
}

func ToAttemptResultResponse(m *model.TestAttemptModel) AttemptResultResponse {
	return AttemptResultResponse{
		TestAttemptID:          m.TestAttemptID,
		TestAttemptStatus:      m.TestAttemptStatus,
		TestAttemptScore:       m.TestAttemptScore,
		TestAttemptPassed:      m.TestAttemptPassed,
		TestAttemptAnswers:     m.TestAttemptAnswers,
		TestAttemptSubmittedAt: m.TestAttemptSubmittedAt,
	}
}
