package service

import (
	"testing"

	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/repository"
	"quizmaster_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScoringFixture(t *testing.T) (*ScoringService, uint) {
	t.Helper()
	catalog := newCatalogService()
	scoring := NewScoringService(catalog, repository.NewAttemptRepository())

	id, err := catalog.Create(validDefinition())
	require.NoError(t, err)
	return scoring, id
}

func answers(labels ...string) []model.SubmittedAnswer {
	out := make([]model.SubmittedAnswer, len(labels))
	for i, label := range labels {
		out[i] = model.SubmittedAnswer{QuestionID: uint(i + 1), Answer: label}
	}
	return out
}

func TestGradeHalfCorrect(t *testing.T) {
	scoring, id := newScoringFixture(t)

	result, err := scoring.Submit(id, "alice", answers("B", "B"), 60)
	require.NoError(t, err)

	assert.Equal(t, 50.0, result.Score)
	assert.Equal(t, 1, result.Correct)
	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Details, 2)
	assert.True(t, result.Details[0].IsCorrect)
	assert.False(t, result.Details[1].IsCorrect)
	assert.Equal(t, "B", result.Details[1].YourAnswer)
	assert.Equal(t, "A", result.Details[1].CorrectAnswer)
}

func TestGradeIsDeterministic(t *testing.T) {
	scoring, id := newScoringFixture(t)
	quiz, err := scoring.Catalog.Get(id)
	require.NoError(t, err)

	first, err := scoring.Grade(quiz, answers("B", "A"))
	require.NoError(t, err)
	second, err := scoring.Grade(quiz, answers("B", "A"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 100.0, first.Score)
}

func TestGradeMatchesByPositionNotQuestionID(t *testing.T) {
	scoring, id := newScoringFixture(t)
	quiz, err := scoring.Catalog.Get(id)
	require.NoError(t, err)

	// Reversed question_id values must not reorder the grading.
	submitted := []model.SubmittedAnswer{
		{QuestionID: 2, Answer: "B"},
		{QuestionID: 1, Answer: "A"},
	}
	result, err := scoring.Grade(quiz, submitted)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Correct)
}

func TestGradeIgnoresExtraAnswers(t *testing.T) {
	scoring, id := newScoringFixture(t)
	quiz, err := scoring.Catalog.Get(id)
	require.NoError(t, err)

	result, err := scoring.Grade(quiz, answers("B", "A", "C", "D"))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Len(t, result.Details, 2)
}

func TestGradePartialSubmission(t *testing.T) {
	scoring, id := newScoringFixture(t)
	quiz, err := scoring.Catalog.Get(id)
	require.NoError(t, err)

	result, err := scoring.Grade(quiz, answers("B"))
	require.NoError(t, err)
	assert.Equal(t, 50.0, result.Score)
	assert.Len(t, result.Details, 1)
}

func TestGradeEmptyQuiz(t *testing.T) {
	scoring := NewScoringService(newCatalogService(), repository.NewAttemptRepository())

	_, err := scoring.Grade(&model.Quiz{}, nil)
	assert.ErrorIs(t, err, util.ErrEmptyQuiz)
}

func TestSubmitUnknownQuiz(t *testing.T) {
	scoring := NewScoringService(newCatalogService(), repository.NewAttemptRepository())

	_, err := scoring.Submit(9, "alice", answers("A"), 10)
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestSubmitRecordsAttempt(t *testing.T) {
	scoring, id := newScoringFixture(t)

	_, err := scoring.Submit(id, "alice", answers("B", "A"), 42)
	require.NoError(t, err)

	recorded := scoring.Attempts.ForUser("alice")
	require.Len(t, recorded, 1)
	assert.Equal(t, id, recorded[0].QuizID)
	assert.Equal(t, "Math Quiz", recorded[0].QuizTitle)
	assert.Equal(t, 100.0, recorded[0].Score)
	assert.Equal(t, 42, recorded[0].TimeTaken)
}
