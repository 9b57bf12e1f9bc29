package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"gorm.io/gorm"

	questionModel "mengemudiku_backend/internals/features/exams/questions/model"
	templateModel "mengemudiku_backend/internals/features/exams/test_templates/model"
	"mengemudiku_backend/internals/features/exams/test_attempts/model"
)

var ErrNotEnoughQuestions = errors.New("not enough active questions in the pool")

// BuildSnapshot assembles the frozen question set for a new attempt.
// Random templates shuffle the active pool and take question_count;
// manual templates load the listed questions in their listed order.
func BuildSnapshot(db *gorm.DB, template *templateModel.TestTemplateModel, rng *rand.Rand) ([]model.SnapshotQuestion, error) {
	switch template.TestTemplateMode {
	case templateModel.TestModeManual:
		return buildManualSnapshot(db, template.TestTemplateQuestionIDs)
	default:
		return buildRandomSnapshot(db, template, rng)
	}
}

func buildRandomSnapshot(db *gorm.DB, template *templateModel.TestTemplateModel, rng *rand.Rand) ([]model.SnapshotQuestion, error) {
	q := db.Where("question_is_active = ?", true)
	if template.TestTemplateCategory != "" {
		q = q.Where("question_category = ?", template.TestTemplateCategory)
	}

	var pool []questionModel.QuestionModel
	if err := q.Find(&pool).Error; err != nil {
		return nil, err
	}
	if len(pool) < template.TestTemplateQuestionCount {
		return nil, ErrNotEnoughQuestions
	}

	return SampleQuestions(pool, template.TestTemplateQuestionCount, rng), nil
}

func buildManualSnapshot(db *gorm.DB, ids []uuid.UUID) ([]model.SnapshotQuestion, error) {
	var questions []questionModel.QuestionModel
	if err := db.Where("question_id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*questionModel.QuestionModel, len(questions))
	for i := range questions {
		byID[questions[i].QuestionID] = &questions[i]
	}

	out := make([]model.SnapshotQuestion, 0, len(ids))
	for _, id := range ids {
		q, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("question %s referenced by template no longer exists", id)
		}
		out = append(out, toSnapshot(q))
	}
	return out, nil
}

// SampleQuestions shuffles the pool and takes n. The rand source is
// injected so tests can seed it.
func SampleQuestions(pool []questionModel.QuestionModel, n int, rng *rand.Rand) []model.SnapshotQuestion {
	idx := rng.Perm(len(pool))
	out := make([]model.SnapshotQuestion, 0, n)
	for _, i := range idx[:n] {
		out = append(out, toSnapshot(&pool[i]))
	}
	return out
}

func toSnapshot(q *questionModel.QuestionModel) model.SnapshotQuestion {
	return model.SnapshotQuestion{
		QuestionID:      q.QuestionID,
		QuestionText:    q.QuestionText,
		QuestionType:    q.QuestionType,
		QuestionChoices: q.QuestionChoices,
	}
}
