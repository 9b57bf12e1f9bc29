package dto

import (
	"time"

	"github.com/google/uuid"

	"mengemudiku_backend/internals/features/courses/posts/model"
)

type PostResponse struct {
	PostID          uuid.UUID `json:"post_id"`
	PostTopicID     uuid.UUID `json:"post_topic_id"`
	PostTitle       string    `json:"post_title"`
	PostContent     string    `json:"post_content"`
	PostIsPublished bool      `json:"post_is_published"`
	PostCreatedAt   time.Time `json:"post_created_at"`
}

type CreatePostRequest struct {
	PostTopicID     uuid.UUID `json:"post_topic_id" validate:"required"`
	PostTitle       string    `json:"post_title" validate:"required,min=3,max=255"`
	PostContent     string    `json:"post_content" validate:"required"`
	PostIsPublished bool      `json:"post_is_published"`
}

type UpdatePostRequest struct {
	PostTitle       *string `json:"post_title,omitempty" validate:"omitempty,min=3,max=255"`
	PostContent     *string `json:"post_content,omitempty"`
	PostIsPublished *bool   `json:"post_is_published,omitempty"`
}

func (r CreatePostRequest) ToModel() *model.PostModel {
	return &model.PostModel{
		PostTopicID:     r.PostTopicID,
		PostTitle:       r.PostTitle,
		PostContent:     r.PostContent,
		PostIsPublished: r.PostIsPublished,
	}
}

func ToPostResponse(m *model.PostModel) PostResponse {
	return PostResponse{
		PostID:          m.PostID,
		PostTopicID:     m.PostTopicID,
		PostTitle:       m.PostTitle,
		PostContent:     m.PostContent,
		PostIsPublished: m.PostIsPublished,
		PostCreatedAt:   m.PostCreatedAt,
	}
}

func ToPostResponses(ms []model.PostModel) []PostResponse {
	out := make([]PostResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToPostResponse(&ms[i]))
	}
	return out
}
