package controller

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "mengemudiku_backend/internals/features/audit/audit_logs/service"
	enrollmentService "mengemudiku_backend/internals/features/courses/enrollments/service"
	"mengemudiku_backend/internals/features/exams/test_attempts/dto"
	"mengemudiku_backend/internals/features/exams/test_attempts/model"
	"mengemudiku_backend/internals/features/exams/test_attempts/service"
	templateModel "mengemudiku_backend/internals/features/exams/test_templates/model"
	helper "mengemudiku_backend/internals/helpers"
)

var validate = validator.New()

type TestAttemptController struct {
	DB  *gorm.DB
	Rng *rand.Rand
}

func NewTestAttemptController(db *gorm.DB) *TestAttemptController {
	return &TestAttemptController{
		DB:  db,
		Rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// 🟢 POST /api/u/test-attempts
func (ctrl *TestAttemptController) StartAttempt(c *fiber.Ctx) error {
	studentID := helper.GetUserUUID(c)
	if studentID == uuid.Nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.StartAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var template templateModel.TestTemplateModel
	if err := ctrl.DB.First(&template, "test_template_id = ?", req.TestTemplateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Test template not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch test template")
	}
	if !template.TestTemplateIsActive {
		return helper.Error(c, fiber.StatusConflict, "Test template is not active")
	}

	enrolled, err := enrollmentService.HasActiveEnrollment(ctrl.DB, studentID, template.TestTemplateCourseID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check enrollment")
	}
	if !enrolled {
		return helper.Error(c, fiber.StatusForbidden, "You are not enrolled in this course")
	}

	snapshot, err := service.BuildSnapshot(ctrl.DB, &template, ctrl.Rng)
	if err != nil {
		if errors.Is(err, service.ErrNotEnoughQuestions) {
			return helper.Error(c, fiber.StatusConflict, "Not enough questions available for this test")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to assemble test questions")
	}

	attempt := model.TestAttemptModel{
		TestAttemptTemplateID: template.TestTemplateID,
		TestAttemptStudentID:  studentID,
		TestAttemptStatus:     model.AttemptStatusInProgress,
		TestAttemptSnapshot:   snapshot,
	}
	if template.TestTemplateDurationMinutes > 0 {
		expires := time.Now().Add(time.Duration(template.TestTemplateDurationMinutes) * time.Minute)
		attempt.TestAttemptExpiresAt = &expires
	}

	if err := ctrl.DB.Create(&attempt).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to start attempt")
	}

	auditService.Record(ctrl.DB, c, "test_attempt.start", "test_attempts", attempt.TestAttemptID.String(), nil)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attempt started", dto.ToAttemptResponse(&attempt))
}

// 🟢 GET /api/u/test-attempts/:id
func (ctrl *TestAttemptController) GetAttempt(c *fiber.Ctx) error {
	studentID := helper.GetUserUUID(c)
	if studentID == uuid.Nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	attempt, fiberErr := ctrl.findOwnAttempt(c, studentID)
	if fiberErr != nil {
		return fiberErr
	}

	if attempt.TestAttemptStatus == model.AttemptStatusCompleted {
		return helper.Success(c, "Attempt result fetched", dto.ToAttemptResultResponse(attempt))
	}
	return helper.Success(c, "Attempt fetched", dto.ToAttemptResponse(attempt))
}

// 🟢 POST /api/u/test-attempts/:id/submit
func (ctrl *TestAttemptController) SubmitAttempt(c *fiber.Ctx) error {
	studentID := helper.GetUserUUID(c)
	if studentID == uuid.Nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.SubmitAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	attempt, fiberErr := ctrl.findOwnAttempt(c, studentID)
	if fiberErr != nil {
		return fiberErr
	}

	// a graded attempt stays graded
	if attempt.TestAttemptStatus == model.AttemptStatusCompleted {
		return helper.Error(c, fiber.StatusConflict, "Attempt has already been submitted")
	}
	if attempt.TestAttemptExpiresAt != nil && time.Now().After(*attempt.TestAttemptExpiresAt) {
		if err := ctrl.DB.Model(attempt).
			Update("test_attempt_status", model.AttemptStatusExpired).Error; err != nil {
			log.Println("[WARN] failed to mark attempt expired:", err)
		}
		return helper.Error(c, fiber.StatusConflict, "Attempt has expired")
	}

	var template templateModel.TestTemplateModel
	if err := ctrl.DB.Unscoped().First(&template, "test_template_id = ?", attempt.TestAttemptTemplateID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch test template")
	}

	answers := make(map[uuid.UUID][]string, len(req.Answers))
	for _, a := range req.Answers {
		answers[a.QuestionID] = a.SelectedLabels
	}

	result := service.GradeAttempt(attempt.TestAttemptSnapshot, answers, template.TestTemplatePassThreshold)

	now := time.Now()
	attempt.TestAttemptStatus = model.AttemptStatusCompleted
	attempt.TestAttemptAnswers = result.Answers
	attempt.TestAttemptScore = result.Score
	attempt.TestAttemptPassed = result.Passed
	attempt.TestAttemptSubmittedAt = &now

	if err := ctrl.DB.Save(attempt).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save attempt")
	}

	// a passing final test finishes the course
	if result.Passed && template.TestTemplateIsFinal {
		if err := enrollmentService.Complete(ctrl.DB, studentID, template.TestTemplateCourseID); err != nil &&
			!errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to complete enrollment")
		}
	}

	auditService.Record(ctrl.DB, c, "test_attempt.submit", "test_attempts", attempt.TestAttemptID.String(), fiber.Map{
		"score":  result.Score,
		"passed": result.Passed,
	})

	return helper.Success(c, "Attempt graded", dto.ToAttemptResultResponse(attempt))
}

// 🟢 GET /api/u/test-attempts
func (ctrl *TestAttemptController) GetMyAttempts(c *fiber.Ctx) error {
	studentID := helper.GetUserUUID(c)
	if studentID == uuid.Nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.TestAttemptModel{}).
		Where("test_attempt_student_id = ?", studentID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count attempts")
	}

	var attempts []model.TestAttemptModel
	if err := q.Order("test_attempt_started_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&attempts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch attempts")
	}

	results := make([]dto.AttemptResultResponse, 0, len(attempts))
	for i := range attempts {
		results = append(results, dto.ToAttemptResultResponse(&attempts[i]))
	}

	return helper.SuccessWithPagination(c, "Attempts fetched",
		results, helper.BuildPagination(paging, total, len(attempts)))
}

func (ctrl *TestAttemptController) findOwnAttempt(c *fiber.Ctx, studentID uuid.UUID) (*model.TestAttemptModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid attempt id")
	}

	var attempt model.TestAttemptModel
	if err := ctrl.DB.First(&attempt, "test_attempt_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Attempt not found")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch attempt")
	}
	if attempt.TestAttemptStudentID != studentID {
		return nil, helper.Error(c, fiber.StatusForbidden, "This attempt belongs to another student")
	}
	return &attempt, nil
}
