package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "mengemudiku_backend/internals/features/audit/audit_logs/service"
	"mengemudiku_backend/internals/features/courses/topics/dto"
	"mengemudiku_backend/internals/features/courses/topics/model"
	helper "mengemudiku_backend/internals/helpers"
)

var validate = validator.New()

type TopicController struct {
	DB *gorm.DB
}

func NewTopicController(db *gorm.DB) *TopicController {
	return &TopicController{DB: db}
}

// 🟢 POST /api/a/topics
func (ctrl *TopicController) CreateTopic(c *fiber.Ctx) error {
	var req dto.CreateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	topic := req.ToModel()
	if err := ctrl.DB.Create(topic).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.Error(c, fiber.StatusConflict, "Topic order already taken in this course")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create topic")
	}

	auditService.Record(ctrl.DB, c, "topic.create", "topics", topic.TopicID.String(), req)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Topic created", dto.ToTopicResponse(topic))
}

// 🟢 GET /api/u/courses/:course_id/topics (ordered)
func (ctrl *TopicController) GetTopicsByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var topics []model.TopicModel
	if err := ctrl.DB.Where("topic_course_id = ?", courseID).
		Order("topic_order ASC").
		Find(&topics).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch topics")
	}

	return helper.Success(c, "Topics fetched", dto.ToTopicResponses(topics))
}

// 🟢 PUT /api/a/topics/:id
func (ctrl *TopicController) UpdateTopic(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid topic id")
	}

	var req dto.UpdateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var topic model.TopicModel
	if err := ctrl.DB.First(&topic, "topic_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Topic not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch topic")
	}

	updates := map[string]interface{}{}
	if req.TopicTitle != nil {
		updates["topic_title"] = *req.TopicTitle
	}
	if req.TopicOrder != nil {
		updates["topic_order"] = *req.TopicOrder
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.Model(&topic).Updates(updates).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.Error(c, fiber.StatusConflict, "Topic order already taken in this course")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update topic")
	}

	auditService.Record(ctrl.DB, c, "topic.update", "topics", topic.TopicID.String(), updates)

	return helper.Success(c, "Topic updated", dto.ToTopicResponse(&topic))
}

// 🟢 DELETE /api/a/topics/:id
func (ctrl *TopicController) DeleteTopic(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid topic id")
	}

	res := ctrl.DB.Delete(&model.TopicModel{}, "topic_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete topic")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Topic not found")
	}

	auditService.Record(ctrl.DB, c, "topic.delete", "topics", id.String(), nil)

	return helper.Success(c, "Topic deleted", nil)
}
