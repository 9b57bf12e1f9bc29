package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "mengemudiku_backend/internals/features/audit/audit_logs/service"
	"mengemudiku_backend/internals/features/exams/questions/dto"
	"mengemudiku_backend/internals/features/exams/questions/model"
	helper "mengemudiku_backend/internals/helpers"
)

var validate = validator.New()

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

// checkChoiceCorrectness: single_choice = exactly one correct flag,
// multiple_choice = at least one.
func checkChoiceCorrectness(questionType string, choices []model.QuestionChoice) error {
	correct := 0
	for _, ch := range choices {
		if ch.IsCorrect {
			correct++
		}
	}
	switch questionType {
	case model.QuestionTypeSingleChoice:
		if correct != 1 {
			return errors.New("single_choice question must have exactly one correct choice")
		}
	case model.QuestionTypeMultipleChoice:
		if correct < 1 {
			return errors.New("multiple_choice question must have at least one correct choice")
		}
	}
	return nil
}

// 🟢 POST /api/a/questions
func (ctrl *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	question := req.ToModel()
	if err := checkChoiceCorrectness(question.QuestionType, question.QuestionChoices); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Create(question).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create question")
	}

	auditService.Record(ctrl.DB, c, "question.create", "questions", question.QuestionID.String(), req)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Question created", dto.ToQuestionResponse(question))
}

// 🟢 GET /api/a/questions?category=&type=&active=&page=&per_page=
func (ctrl *QuestionController) GetAllQuestions(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.QuestionModel{})
	if category := c.Query("category"); category != "" {
		q = q.Where("question_category = ?", category)
	}
	if qtype := c.Query("type"); qtype != "" {
		q = q.Where("question_type = ?", qtype)
	}
	if active := c.Query("active"); active != "" {
		q = q.Where("question_is_active = ?", active == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count questions")
	}

	var questions []model.QuestionModel
	if err := q.Order("question_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&questions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	return helper.SuccessWithPagination(c, "Questions fetched",
		dto.ToQuestionResponses(questions), helper.BuildPagination(paging, total, len(questions)))
}

// 🟢 GET /api/a/questions/:id
func (ctrl *QuestionController) GetQuestionByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid question id")
	}

	var question model.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch question")
	}

	return helper.Success(c, "Question fetched", dto.ToQuestionResponse(&question))
}

// 🟢 PUT /api/a/questions/:id
func (ctrl *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid question id")
	}

	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var question model.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch question")
	}

	if req.QuestionText != nil {
		question.QuestionText = *req.QuestionText
	}
	if req.QuestionType != nil {
		question.QuestionType = *req.QuestionType
	}
	if req.QuestionChoices != nil {
		question.QuestionChoices = dto.ToChoices(req.QuestionChoices)
	}
	if req.QuestionExplanation != nil {
		question.QuestionExplanation = *req.QuestionExplanation
	}
	if req.QuestionCategory != nil {
		question.QuestionCategory = *req.QuestionCategory
	}
	if req.QuestionIsActive != nil {
		question.QuestionIsActive = *req.QuestionIsActive
	}

	if err := checkChoiceCorrectness(question.QuestionType, question.QuestionChoices); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Save(&question).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update question")
	}

	auditService.Record(ctrl.DB, c, "question.update", "questions", question.QuestionID.String(), req)

	return helper.Success(c, "Question updated", dto.ToQuestionResponse(&question))
}

// 🟢 DELETE /api/a/questions/:id (soft delete; snapshots already taken keep their copy)
func (ctrl *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid question id")
	}

	res := ctrl.DB.Delete(&model.QuestionModel{}, "question_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Question not found")
	}

	auditService.Record(ctrl.DB, c, "question.delete", "questions", id.String(), nil)

	return helper.Success(c, "Question deleted", nil)
}
