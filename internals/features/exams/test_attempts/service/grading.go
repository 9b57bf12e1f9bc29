package service

import (
	"math"

	"github.com/google/uuid"

	questionModel "mengemudiku_backend/internals/features/exams/questions/model"
	"mengemudiku_backend/internals/features/exams/test_attempts/model"
)

// GradeResult is the outcome of grading one full attempt.
type GradeResult struct {
	Answers      []model.AttemptAnswer
	CorrectCount int
	Score        int
	Passed       bool
}

// GradeAttempt grades submitted answers against the attempt snapshot.
// Single choice counts when exactly the one correct label was picked;
// multiple choice requires exact set equality of labels. Unanswered
// questions count as wrong. Score is 100*correct/total rounded half up,
// passed when score >= threshold.
func GradeAttempt(snapshot []model.SnapshotQuestion, answers map[uuid.UUID][]string, threshold int) GradeResult {
	result := GradeResult{
		Answers: make([]model.AttemptAnswer, 0, len(snapshot)),
	}

	for _, q := range snapshot {
		selected := answers[q.QuestionID]
		correct := isAnswerCorrect(q, selected)
		if correct {
			result.CorrectCount++
		}
		result.Answers = append(result.Answers, model.AttemptAnswer{
			QuestionID:     q.QuestionID,
			SelectedLabels: selected,
			IsCorrect:      correct,
		})
	}

	if len(snapshot) > 0 {
		result.Score = int(math.Round(100 * float64(result.CorrectCount) / float64(len(snapshot))))
	}
	result.Passed = result.Score >= threshold
	return result
}

func isAnswerCorrect(q model.SnapshotQuestion, selected []string) bool {
	correct := q.CorrectLabels()
	switch q.QuestionType {
	case questionModel.QuestionTypeSingleChoice:
		return len(selected) == 1 && len(correct) == 1 && selected[0] == correct[0]
	case questionModel.QuestionTypeMultipleChoice:
		return sameLabelSet(selected, correct)
	}
	return false
}

func sameLabelSet(a, b []string) bool {
	if len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, l := range a {
		set[l] = struct{}{}
	}
	if len(set) != len(b) {
		return false
	}
	for _, l := range b {
		if _, ok := set[l]; !ok {
			return false
		}
	}
	return true
}
