package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrectLabels(t *testing.T) {
	q := QuestionModel{
		QuestionType: QuestionTypeMultipleChoice,
		QuestionChoices: []QuestionChoice{
			{Label: "A", IsCorrect: true},
			{Label: "B"},
			{Label: "C", IsCorrect: true},
			{Label: "D"},
		},
	}
	assert.Equal(t, []string{"A", "C"}, q.CorrectLabels())

	none := QuestionModel{QuestionChoices: []QuestionChoice{{Label: "A"}}}
	assert.Empty(t, none.CorrectLabels())
}
