package dto

import (
	"time"

	"github.com/google/uuid"

	"mengemudiku_backend/internals/features/courses/topics/model"
)

type TopicResponse struct {
	TopicID        uuid.UUID `json:"topic_id"`
	TopicCourseID  uuid.UUID `json:"topic_course_id"`
	TopicTitle     string    `json:"topic_title"`
	TopicOrder     int       `json:"topic_order"`
	TopicCreatedAt time.Time `json:"topic_created_at"`
}

type CreateTopicRequest struct {
	TopicCourseID uuid.UUID `json:"topic_course_id" validate:"required"`
	TopicTitle    string    `json:"topic_title" validate:"required,min=3,max=255"`
	TopicOrder    int       `json:"topic_order" validate:"required,gte=1"`
}

type UpdateTopicRequest struct {
	TopicTitle *string `json:"topic_title,omitempty" validate:"omitempty,min=3,max=255"`
	TopicOrder *int    `json:"topic_order,omitempty" validate:"omitempty,gte=1"`
}

func (r CreateTopicRequest) ToModel() *model.TopicModel {
	return &model.TopicModel{
		TopicCourseID: r.TopicCourseID,
		TopicTitle:    r.TopicTitle,
		TopicOrder:    r.TopicOrder,
	}
}

func ToTopicResponse(m *model.TopicModel) TopicResponse {
	return TopicResponse{
		TopicID:        m.TopicID,
		TopicCourseID:  m.TopicCourseID,
		TopicTitle:     m.TopicTitle,
		TopicOrder:     m.TopicOrder,
		TopicCreatedAt: m.TopicCreatedAt,
	}
}

func ToTopicResponses(ms []model.TopicModel) []TopicResponse {
	out := make([]TopicResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToTopicResponse(&ms[i]))
	}
	return out
}
