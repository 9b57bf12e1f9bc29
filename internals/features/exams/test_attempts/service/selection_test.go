package service

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	questionModel "mengemudiku_backend/internals/features/exams/questions/model"
)

func makePool(n int) []questionModel.QuestionModel {
	pool := make([]questionModel.QuestionModel, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, questionModel.QuestionModel{
			QuestionID:   uuid.New(),
			QuestionType: questionModel.QuestionTypeSingleChoice,
			QuestionChoices: []questionModel.QuestionChoice{
				{Label: "A", IsCorrect: true},
				{Label: "B"},
			},
		})
	}
	return pool
}

func TestSampleQuestions_NoDuplicates(t *testing.T) {
	pool := makePool(20)
	rng := rand.New(rand.NewSource(1))

	sample := SampleQuestions(pool, 10, rng)
	require.Len(t, sample, 10)

	poolIDs := make(map[uuid.UUID]struct{}, len(pool))
	for _, q := range pool {
		poolIDs[q.QuestionID] = struct{}{}
	}

	seen := make(map[uuid.UUID]struct{}, len(sample))
	for _, q := range sample {
		_, inPool := poolIDs[q.QuestionID]
		assert.True(t, inPool, "sampled question must come from the pool")
		_, dup := seen[q.QuestionID]
		assert.False(t, dup, "question sampled twice")
		seen[q.QuestionID] = struct{}{}
	}
}

func TestSampleQuestions_Deterministic(t *testing.T) {
	pool := makePool(15)

	first := SampleQuestions(pool, 5, rand.New(rand.NewSource(42)))
	second := SampleQuestions(pool, 5, rand.New(rand.NewSource(42)))

	require.Len(t, second, 5)
	for i := range first {
		assert.Equal(t, first[i].QuestionID, second[i].QuestionID)
	}
}

func TestSampleQuestions_WholePool(t *testing.T) {
	pool := makePool(4)
	sample := SampleQuestions(pool, 4, rand.New(rand.NewSource(7)))
	assert.Len(t, sample, 4)
}

func TestSampleQuestions_StripsNothing(t *testing.T) {
	pool := makePool(3)
	sample := SampleQuestions(pool, 1, rand.New(rand.NewSource(3)))

	// snapshots keep the correct flags; stripping happens at the DTO layer
	require.Len(t, sample, 1)
	assert.Equal(t, []string{"A"}, sample[0].CorrectLabels())
}
