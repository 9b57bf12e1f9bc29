package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"mengemudiku_backend/internals/features/courses/courses/model"
)

// ============================
// Response DTO
// ============================

type CourseResponse struct {
	CourseID                uuid.UUID  `json:"course_id"`
	CourseTitle             string     `json:"course_title"`
	CourseSlug              string     `json:"course_slug"`
	CourseDescription       string     `json:"course_description"`
	CoursePrice             int64      `json:"course_price"`
	CourseDurationHours     int        `json:"course_duration_hours"`
	CourseLicenseCategories []string   `json:"course_license_categories"`
	CourseInstructorID      *uuid.UUID `json:"course_instructor_id,omitempty"`
	CourseIsActive          bool       `json:"course_is_active"`
	CourseCreatedAt         time.Time  `json:"course_created_at"`
}

// ============================
// Create / Update Request DTO
// ============================

type CreateCourseRequest struct {
	CourseTitle             string     `json:"course_title" validate:"required,min=3,max=255"`
	CourseDescription       string     `json:"course_description"`
	CoursePrice             int64      `json:"course_price" validate:"gte=0"`
	CourseDurationHours     int        `json:"course_duration_hours" validate:"gte=0"`
	CourseLicenseCategories []string   `json:"course_license_categories" validate:"omitempty,dive,required"`
	CourseInstructorID      *uuid.UUID `json:"course_instructor_id,omitempty"`
}

type UpdateCourseRequest struct {
	CourseTitle             *string    `json:"course_title,omitempty" validate:"omitempty,min=3,max=255"`
	CourseDescription       *string    `json:"course_description,omitempty"`
	CoursePrice             *int64     `json:"course_price,omitempty" validate:"omitempty,gte=0"`
	CourseDurationHours     *int       `json:"course_duration_hours,omitempty" validate:"omitempty,gte=0"`
	CourseLicenseCategories []string   `json:"course_license_categories,omitempty" validate:"omitempty,dive,required"`
	CourseInstructorID      *uuid.UUID `json:"course_instructor_id,omitempty"`
	CourseIsActive          *bool      `json:"course_is_active,omitempty"`
}

// ============================
// Converter
// ============================

func (r CreateCourseRequest) ToModel() *model.CourseModel {
	return &model.CourseModel{
		CourseTitle:             r.CourseTitle,
		CourseDescription:       r.CourseDescription,
		CoursePrice:             r.CoursePrice,
		CourseDurationHours:     r.CourseDurationHours,
		CourseLicenseCategories: pq.StringArray(r.CourseLicenseCategories),
		CourseInstructorID:      r.CourseInstructorID,
		CourseIsActive:          true,
	}
}

func ToCourseResponse(m *model.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:                m.CourseID,
		CourseTitle:             m.CourseTitle,
		CourseSlug:              m.CourseSlug,
		CourseDescription:       m.CourseDescription,
		CoursePrice:             m.CoursePrice,
		CourseDurationHours:     m.CourseDurationHours,
		CourseLicenseCategories: []string(m.CourseLicenseCategories),
		CourseInstructorID:      m.CourseInstructorID,
		CourseIsActive:          m.CourseIsActive,
		CourseCreatedAt:         m.CourseCreatedAt,
	}
}

func ToCourseResponses(ms []model.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToCourseResponse(&ms[i]))
	}
	return out
}
