package dto

import (
	"time"

	"github.com/google/uuid"

	"mengemudiku_backend/internals/features/exams/questions/model"
)

// ============================
// Request DTOs
// ============================

type ChoiceRequest struct {
	Label     string `json:"label" validate:"required,min=1,max=5"`
	Text      string `json:"text" validate:"required"`
	IsCorrect bool   `json:"is_correct"`
}

type CreateQuestionRequest struct {
	QuestionText        string          `json:"question_text" validate:"required"`
	QuestionType        string          `json:"question_type" validate:"required,oneof=single_choice multiple_choice"`
	QuestionChoices     []ChoiceRequest `json:"question_choices" validate:"required,min=2,dive"`
	QuestionExplanation string          `json:"question_explanation"`
	QuestionCategory    string          `json:"question_category" validate:"omitempty,max=100"`
}

type UpdateQuestionRequest struct {
	QuestionText        *string         `json:"question_text,omitempty"`
	QuestionType        *string         `json:"question_type,omitempty" validate:"omitempty,oneof=single_choice multiple_choice"`
	QuestionChoices     []ChoiceRequest `json:"question_choices,omitempty" validate:"omitempty,min=2,dive"`
	QuestionExplanation *string         `json:"question_explanation,omitempty"`
	QuestionCategory    *string         `json:"question_category,omitempty" validate:"omitempty,max=100"`
	QuestionIsActive    *bool           `json:"question_is_active,omitempty"`
}

// ============================
// Response DTO (staff view, correct flags included)
// ============================

type QuestionResponse struct {
	QuestionID          uuid.UUID              `json:"question_id"`
	QuestionText        string                 `json:"question_text"`
	QuestionType        string                 `json:"question_type"`
	QuestionChoices     []model.QuestionChoice `json:"question_choices"`
	QuestionExplanation string                 `json:"question_explanation"`
	QuestionCategory    string                 `json:"question_category"`
	QuestionIsActive    bool                   `json:"question_is_active"`
	QuestionCreatedAt   time.Time              `json:"question_created_at"`
}

// ============================
// Converters
// ============================

func ToChoices(reqs []ChoiceRequest) []model.QuestionChoice {
	out := make([]model.QuestionChoice, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, model.QuestionChoice{
			Label:     r.Label,
			Text:      r.Text,
			IsCorrect: r.IsCorrect,
		})
	}
	return out
}

func (r CreateQuestionRequest) ToModel() *model.QuestionModel {
	return &model.QuestionModel{
		QuestionText:        r.QuestionText,
		QuestionType:        r.QuestionType,
		QuestionChoices:     ToChoices(r.QuestionChoices),
		QuestionExplanation: r.QuestionExplanation,
		QuestionCategory:    r.QuestionCategory,
		QuestionIsActive:    true,
	}
}

func ToQuestionResponse(m *model.QuestionModel) QuestionResponse {
	return QuestionResponse{
		QuestionID:          m.QuestionID,
		QuestionText:        m.QuestionText,
		QuestionType:        m.QuestionType,
		QuestionChoices:     m.QuestionChoices,
		QuestionExplanation: m.QuestionExplanation,
		QuestionCategory:    m.QuestionCategory,
		QuestionIsActive:    m.QuestionIsActive,
		QuestionCreatedAt:   m.QuestionCreatedAt,
	}
}

func ToQuestionResponses(ms []model.QuestionModel) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToQuestionResponse(&ms[i]))
	}
	return out
}
