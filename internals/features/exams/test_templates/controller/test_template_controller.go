package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "mengemudiku_backend/internals/features/audit/audit_logs/service"
	courseModel "mengemudiku_backend/internals/features/courses/courses/model"
	"mengemudiku_backend/internals/features/exams/test_templates/dto"
	"mengemudiku_backend/internals/features/exams/test_templates/model"
	helper "mengemudiku_backend/internals/helpers"
)

var validate = validator.New()

type TestTemplateController struct {
	DB *gorm.DB
}

func NewTestTemplateController(db *gorm.DB) *TestTemplateController {
	return &TestTemplateController{DB: db}
}

// checkModeConfig rejects templates whose mode and question config disagree.
func checkModeConfig(m *model.TestTemplateModel) error {
	switch m.TestTemplateMode {
	case model.TestModeRandom:
		if m.TestTemplateQuestionCount < 1 {
			return errors.New("random mode requires test_template_question_count >= 1")
		}
	case model.TestModeManual:
		if len(m.TestTemplateQuestionIDs) < 1 {
			return errors.New("manual mode requires a non-empty test_template_question_ids list")
		}
	}
	return nil
}

// 🟢 POST /api/i/test-templates
func (ctrl *TestTemplateController) CreateTestTemplate(c *fiber.Ctx) error {
	var req dto.CreateTestTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&courseModel.CourseModel{}).
		Where("course_id = ?", req.TestTemplateCourseID).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check course")
	}
	if count == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Course not found")
	}

	template := req.ToModel()
	if err := checkModeConfig(template); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Create(template).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create test template")
	}

	auditService.Record(ctrl.DB, c, "test_template.create", "test_templates", template.TestTemplateID.String(), req)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Test template created", dto.ToTestTemplateResponse(template))
}

// 🟢 GET /api/i/courses/:course_id/test-templates
func (ctrl *TestTemplateController) GetTestTemplatesByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var templates []model.TestTemplateModel
	if err := ctrl.DB.
		Where("test_template_course_id = ?", courseID).
		Order("test_template_created_at ASC").
		Find(&templates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch test templates")
	}

	return helper.Success(c, "Test templates fetched", dto.ToTestTemplateResponses(templates))
}

// 🟢 GET /api/i/test-templates/:id
func (ctrl *TestTemplateController) GetTestTemplateByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid test template id")
	}

	var template model.TestTemplateModel
	if err := ctrl.DB.First(&template, "test_template_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Test template not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch test template")
	}

	return helper.Success(c, "Test template fetched", dto.ToTestTemplateResponse(&template))
}

// 🟢 PUT /api/i/test-templates/:id
func (ctrl *TestTemplateController) UpdateTestTemplate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid test template id")
	}

	var req dto.UpdateTestTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var template model.TestTemplateModel
	if err := ctrl.DB.First(&template, "test_template_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Test template not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch test template")
	}

	if req.TestTemplateTitle != nil {
		template.TestTemplateTitle = *req.TestTemplateTitle
	}
	if req.TestTemplateMode != nil {
		template.TestTemplateMode = *req.TestTemplateMode
	}
	if req.TestTemplateQuestionCount != nil {
		template.TestTemplateQuestionCount = *req.TestTemplateQuestionCount
	}
	if req.TestTemplateCategory != nil {
		template.TestTemplateCategory = *req.TestTemplateCategory
	}
	if req.TestTemplateQuestionIDs != nil {
		template.TestTemplateQuestionIDs = req.TestTemplateQuestionIDs
	}
	if req.TestTemplatePassThreshold != nil {
		template.TestTemplatePassThreshold = *req.TestTemplatePassThreshold
	}
	if req.TestTemplateDurationMinutes != nil {
		template.TestTemplateDurationMinutes = *req.TestTemplateDurationMinutes
	}
	if req.TestTemplateIsFinal != nil {
		template.TestTemplateIsFinal = *req.TestTemplateIsFinal
	}
	if req.TestTemplateIsActive != nil {
		template.TestTemplateIsActive = *req.TestTemplateIsActive
	}

	if err := checkModeConfig(&template); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Save(&template).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update test template")
	}

	auditService.Record(ctrl.DB, c, "test_template.update", "test_templates", template.TestTemplateID.String(), req)

	return helper.Success(c, "Test template updated", dto.ToTestTemplateResponse(&template))
}

// 🟢 DELETE /api/i/test-templates/:id (soft delete; existing attempts keep their snapshots)
func (ctrl *TestTemplateController) DeleteTestTemplate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid test template id")
	}

	res := ctrl.DB.Delete(&model.TestTemplateModel{}, "test_template_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete test template")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Test template not found")
	}

	auditService.Record(ctrl.DB, c, "test_template.delete", "test_templates", id.String(), nil)

	return helper.Success(c, "Test template deleted", nil)
}
