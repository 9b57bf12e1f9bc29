package dto

import (
	"time"

	"github.com/google/uuid"

	"mengemudiku_backend/internals/features/exams/test_templates/model"
)

// ============================
// Request DTOs
// ============================

type CreateTestTemplateRequest struct {
	TestTemplateCourseID        uuid.UUID   `json:"test_template_course_id" validate:"required"`
	TestTemplateTitle           string      `json:"test_template_title" validate:"required,min=3,max=200"`
	TestTemplateMode            string      `json:"test_template_mode" validate:"required,oneof=random manual"`
	TestTemplateQuestionCount   int         `json:"test_template_question_count" validate:"omitempty,min=1"`
	TestTemplateCategory        string      `json:"test_template_category" validate:"omitempty,max=100"`
	TestTemplateQuestionIDs     []uuid.UUID `json:"test_template_question_ids"`
	TestTemplatePassThreshold   int         `json:"test_template_pass_threshold" validate:"required,min=1,max=100"`
	TestTemplateDurationMinutes int         `json:"test_template_duration_minutes" validate:"omitempty,min=0,max=600"`
	TestTemplateIsFinal         bool        `json:"test_template_is_final"`
}

type UpdateTestTemplateRequest struct {
	TestTemplateTitle           *string     `json:"test_template_title,omitempty" validate:"omitempty,min=3,max=200"`
	TestTemplateMode            *string     `json:"test_template_mode,omitempty" validate:"omitempty,oneof=random manual"`
	TestTemplateQuestionCount   *int        `json:"test_template_question_count,omitempty" validate:"omitempty,min=1"`
	TestTemplateCategory        *string     `json:"test_template_category,omitempty" validate:"omitempty,max=100"`
	TestTemplateQuestionIDs     []uuid.UUID `json:"test_template_question_ids,omitempty"`
	TestTemplatePassThreshold   *int        `json:"test_template_pass_threshold,omitempty" validate:"omitempty,min=1,max=100"`
	TestTemplateDurationMinutes *int        `json:"test_template_duration_minutes,omitempty" validate:"omitempty,min=0,max=600"`
	TestTemplateIsFinal         *bool       `json:"test_template_is_final,omitempty"`
	TestTemplateIsActive        *bool       `json:"test_template_is_active,omitempty"`
}

// ============================
// Response DTO
// ============================

type TestTemplateResponse struct {
	TestTemplateID              uuid.UUID   `json:"test_template_id"`
	TestTemplateCourseID        uuid.UUID   `json:"test_template_course_id"`
	TestTemplateTitle           string      `json:"test_template_title"`
	TestTemplateMode            string      `json:"test_template_mode"`
	TestTemplateQuestionCount   int         `json:"test_template_question_count"`
	TestTemplateCategory        string      `json:"test_template_category"`
	TestTemplateQuestionIDs     []uuid.UUID `json:"test_template_question_ids,omitempty"`
	TestTemplatePassThreshold   int         `json:"test_template_pass_threshold"`
	TestTemplateDurationMinutes int         `json:"test_template_duration_minutes"`
	TestTemplateIsFinal         bool        `json:"test_template_is_final"`
	TestTemplateIsActive        bool        `json:"test_template_is_active"`
	TestTemplateCreatedAt       time.Time   `json:"test_template_created_at"`
}

// ============================
// Converters
// ============================

func (r CreateTestTemplateRequest) ToModel() *model.TestTemplateModel {
	return &model.TestTemplateModel{
		TestTemplateCourseID:        r.TestTemplateCourseID,
		TestTemplateTitle:           r.TestTemplateTitle,
		TestTemplateMode:            r.TestTemplateMode,
		TestTemplateQuestionCount:   r.TestTemplateQuestionCount,
		TestTemplateCategory:        r.TestTemplateCategory,
		TestTemplateQuestionIDs:     r.TestTemplateQuestionIDs,
		TestTemplatePassThreshold:   r.TestTemplatePassThreshold,
		TestTemplateDurationMinutes: r.TestTemplateDurationMinutes,
		TestTemplateIsFinal:         r.TestTemplateIsFinal,
		TestTemplateIsActive:        true,
	}
}

func ToTestTemplateResponse(m *model.TestTemplateModel) TestTemplateResponse {
	return TestTemplateResponse{
		TestTemplateID:              m.TestTemplateID,
		TestTemplateCourseID:        m.TestTemplateCourseID,
		TestTemplateTitle:           m.TestTemplateTitle,
		TestTemplateMode:            m.TestTemplateMode,
		TestTemplateQuestionCount:   m.TestTemplateQuestionCount,
		TestTemplateCategory:        m.TestTemplateCategory,
		TestTemplateQuestionIDs:     m.TestTemplateQuestionIDs,
		TestTemplatePassThreshold:   m.TestTemplatePassThreshold,
		TestTemplateDurationMinutes: m.TestTemplateDurationMinutes,
		TestTemplateIsFinal:         m.TestTemplateIsFinal,
		TestTemplateIsActive:        m.TestTemplateIsActive,
		TestTemplateCreatedAt:       m.TestTemplateCreatedAt,
	}
}

func ToTestTemplateResponses(ms []model.TestTemplateModel) []TestTemplateResponse {
	out := make([]TestTemplateResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToTestTemplateResponse(&ms[i]))
	}
	return out
}
