package dto

import (
	"time"

	"github.com/google/uuid"

	"mengemudiku_backend/internals/features/users/user/model"
)

// ============================
// Response DTO
// ============================

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	HasGoogle bool      `json:"has_google"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================
// Request DTOs
// ============================

type UpdateUserRequest struct {
	UserName *string `json:"user_name,omitempty" validate:"omitempty,min=3,max=50"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=student instructor admin"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// ============================
// Converter
// ============================

func ToUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		UserName:  m.UserName,
		Email:     m.Email,
		Role:      m.Role,
		Phone:     m.Phone,
		IsActive:  m.IsActive,
		HasGoogle: m.GoogleID != nil,
		CreatedAt: m.CreatedAt,
	}
}

func ToUserResponses(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToUserResponse(&ms[i]))
	}
	return out
}
