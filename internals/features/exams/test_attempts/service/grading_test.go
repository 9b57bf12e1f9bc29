package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	questionModel "mengemudiku_backend/internals/features/exams/questions/model"
	"mengemudiku_backend/internals/features/exams/test_attempts/model"
)

func singleChoiceQuestion(id uuid.UUID, correctLabel string) model.SnapshotQuestion {
	return model.SnapshotQuestion{
		QuestionID:   id,
		QuestionType: questionModel.QuestionTypeSingleChoice,
		QuestionChoices: []questionModel.QuestionChoice{
			{Label: "A", Text: "a", IsCorrect: correctLabel == "A"},
			{Label: "B", Text: "b", IsCorrect: correctLabel == "B"},
			{Label: "C", Text: "c", IsCorrect: correctLabel == "C"},
		},
	}
}

func multipleChoiceQuestion(id uuid.UUID, correctLabels ...string) model.SnapshotQuestion {
	isCorrect := func(label string) bool {
		for _, l := range correctLabels {
			if l == label {
				return true
			}
		}
		return false
	}
	return model.SnapshotQuestion{
		QuestionID:   id,
		QuestionType: questionModel.QuestionTypeMultipleChoice,
		QuestionChoices: []questionModel.QuestionChoice{
			{Label: "A", Text: "a", IsCorrect: isCorrect("A")},
			{Label: "B", Text: "b", IsCorrect: isCorrect("B")},
			{Label: "C", Text: "c", IsCorrect: isCorrect("C")},
			{Label: "D", Text: "d", IsCorrect: isCorrect("D")},
		},
	}
}

func TestGradeAttempt_SingleChoice(t *testing.T) {
	q1 := uuid.New()
	q2 := uuid.New()
	snapshot := []model.SnapshotQuestion{
		singleChoiceQuestion(q1, "B"),
		singleChoiceQuestion(q2, "A"),
	}

	result := GradeAttempt(snapshot, map[uuid.UUID][]string{
		q1: {"B"},
		q2: {"C"},
	}, 50)

	assert.Equal(t, 1, result.CorrectCount)
	assert.Equal(t, 50, result.Score)
	assert.True(t, result.Passed)

	require.Len(t, result.Answers, 2)
	assert.True(t, result.Answers[0].IsCorrect)
	assert.False(t, result.Answers[1].IsCorrect)
}

func TestGradeAttempt_MultipleChoiceExactSet(t *testing.T) {
	id := uuid.New()
	snapshot := []model.SnapshotQuestion{multipleChoiceQuestion(id, "A", "C")}

	tests := []struct {
		name     string
		selected []string
		want     bool
	}{
		{"exact match", []string{"A", "C"}, true},
		{"order does not matter", []string{"C", "A"}, true},
		{"missing one", []string{"A"}, false},
		{"extra wrong label", []string{"A", "C", "D"}, false},
		{"all wrong", []string{"B", "D"}, false},
		{"unanswered", nil, false},
		{"duplicate labels collapse", []string{"A", "A", "C"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GradeAttempt(snapshot, map[uuid.UUID][]string{id: tt.selected}, 100)
			assert.Equal(t, tt.want, result.Answers[0].IsCorrect)
		})
	}
}

func TestGradeAttempt_ScoreRounding(t *testing.T) {
	// 2 of 3 correct = 66.67, rounds to 67
	q1, q2, q3 := uuid.New(), uuid.New(), uuid.New()
	snapshot := []model.SnapshotQuestion{
		singleChoiceQuestion(q1, "A"),
		singleChoiceQuestion(q2, "A"),
		singleChoiceQuestion(q3, "A"),
	}

	result := GradeAttempt(snapshot, map[uuid.UUID][]string{
		q1: {"A"},
		q2: {"A"},
		q3: {"B"},
	}, 67)

	assert.Equal(t, 67, result.Score)
	assert.True(t, result.Passed)

	result = GradeAttempt(snapshot, map[uuid.UUID][]string{q1: {"A"}}, 34)
	// 1 of 3 = 33.33, rounds to 33
	assert.Equal(t, 33, result.Score)
	assert.False(t, result.Passed)
}

func TestGradeAttempt_ThresholdBoundary(t *testing.T) {
	id := uuid.New()
	snapshot := []model.SnapshotQuestion{singleChoiceQuestion(id, "A")}

	passed := GradeAttempt(snapshot, map[uuid.UUID][]string{id: {"A"}}, 100)
	assert.Equal(t, 100, passed.Score)
	assert.True(t, passed.Passed, "score equal to threshold passes")

	failed := GradeAttempt(snapshot, map[uuid.UUID][]string{id: {"B"}}, 1)
	assert.Equal(t, 0, failed.Score)
	assert.False(t, failed.Passed)
}

func TestGradeAttempt_EmptySnapshot(t *testing.T) {
	result := GradeAttempt(nil, nil, 70)
	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Passed)
	assert.Empty(t, result.Answers)
}

func TestGradeAttempt_SingleChoiceMultipleSelected(t *testing.T) {
	id := uuid.New()
	snapshot := []model.SnapshotQuestion{singleChoiceQuestion(id, "A")}

	// picking two labels on a single choice question is never correct,
	// even when the correct one is among them
	result := GradeAttempt(snapshot, map[uuid.UUID][]string{id: {"A", "B"}}, 100)
	assert.False(t, result.Answers[0].IsCorrect)
}
