package service

import (
	"context"
	"testing"
	"time"

	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/repository"
	"quizmaster_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type analyticsFixture struct {
	catalog   *CatalogService
	attempts  *repository.AttemptRepository
	analytics *AnalyticsService
}

func newAnalyticsFixture() *analyticsFixture {
	catalog := newCatalogService()
	attempts := repository.NewAttemptRepository()
	return &analyticsFixture{
		catalog:   catalog,
		attempts:  attempts,
		analytics: NewAnalyticsService(catalog, attempts, nil),
	}
}

func (f *analyticsFixture) record(username string, quizID uint, score float64, day string, details ...model.AnswerDetail) {
	date, _ := time.Parse("2006-01-02", day)
	f.attempts.Append(model.Attempt{
		Username: username,
		QuizID:   quizID,
		Score:    score,
		Details:  details,
		Date:     date,
	})
}

func TestLeaderboardPlaceholderUntilFirstAttempt(t *testing.T) {
	f := newAnalyticsFixture()

	entries := f.analytics.Leaderboard(context.Background())
	require.Len(t, entries, 3)
	assert.Equal(t, "admin", entries[0].Username)
	assert.Equal(t, 100.0, entries[0].TotalScore)
	assert.Equal(t, 5, entries[0].QuizzesTaken)
	assert.Equal(t, 85.0, entries[0].AverageScore)
	assert.Equal(t, "user1", entries[1].Username)
	assert.Equal(t, "user2", entries[2].Username)

	f.record("zoe", 1, 40, "2026-01-05")

	entries = f.analytics.Leaderboard(context.Background())
	require.Len(t, entries, 1)
	assert.Equal(t, "zoe", entries[0].Username)
}

func TestLeaderboardAggregatesAndSorts(t *testing.T) {
	f := newAnalyticsFixture()

	f.record("zoe", 1, 50, "2026-01-05")
	f.record("amy", 1, 100, "2026-01-05")
	f.record("zoe", 2, 75, "2026-01-06")

	entries := f.analytics.Leaderboard(context.Background())
	require.Len(t, entries, 2)
	assert.Equal(t, "zoe", entries[0].Username)
	assert.Equal(t, 125.0, entries[0].TotalScore)
	assert.Equal(t, 2, entries[0].QuizzesTaken)
	assert.Equal(t, 62.5, entries[0].AverageScore)
	assert.Equal(t, "amy", entries[1].Username)
}

func TestQuizAnalyticsUnknownQuiz(t *testing.T) {
	f := newAnalyticsFixture()

	_, err := f.analytics.QuizAnalytics(5)
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestQuizAnalyticsNoAttempts(t *testing.T) {
	f := newAnalyticsFixture()
	id, err := f.catalog.Create(validDefinition())
	require.NoError(t, err)

	analytics, err := f.analytics.QuizAnalytics(id)
	require.NoError(t, err)
	assert.Zero(t, analytics.TotalAttempts)
	assert.Zero(t, analytics.AverageScore)
	assert.Zero(t, analytics.CompletionRate)
	assert.Empty(t, analytics.ScoreDistribution)
	assert.Empty(t, analytics.AttemptsOverTime)
	assert.Empty(t, analytics.QuestionAnalytics)
}

func TestQuizAnalyticsBucketEdges(t *testing.T) {
	f := newAnalyticsFixture()
	id, err := f.catalog.Create(validDefinition())
	require.NoError(t, err)

	// Upper edges land in the lower bucket: 25 in 0-25, 50 in 26-50, 75 in 51-75.
	for _, score := range []float64{0, 25, 26, 50, 75, 76, 100} {
		f.record("zoe", id, score, "2026-01-05")
	}

	analytics, err := f.analytics.QuizAnalytics(id)
	require.NoError(t, err)
	require.Len(t, analytics.ScoreDistribution, 4)
	assert.Equal(t, model.ScoreBucket{Range: "0-25", Count: 2}, analytics.ScoreDistribution[0])
	assert.Equal(t, model.ScoreBucket{Range: "26-50", Count: 2}, analytics.ScoreDistribution[1])
	assert.Equal(t, model.ScoreBucket{Range: "51-75", Count: 1}, analytics.ScoreDistribution[2])
	assert.Equal(t, model.ScoreBucket{Range: "76-100", Count: 2}, analytics.ScoreDistribution[3])
	assert.Equal(t, 100.0, analytics.CompletionRate)
}

func TestQuizAnalyticsAttemptsOverTimeAscending(t *testing.T) {
	f := newAnalyticsFixture()
	id, err := f.catalog.Create(validDefinition())
	require.NoError(t, err)

	f.record("zoe", id, 50, "2026-01-07")
	f.record("zoe", id, 50, "2026-01-05")
	f.record("amy", id, 50, "2026-01-05")

	analytics, err := f.analytics.QuizAnalytics(id)
	require.NoError(t, err)
	require.Len(t, analytics.AttemptsOverTime, 2)
	assert.Equal(t, model.DateCount{Date: "2026-01-05", Count: 2}, analytics.AttemptsOverTime[0])
	assert.Equal(t, model.DateCount{Date: "2026-01-07", Count: 1}, analytics.AttemptsOverTime[1])
}

func TestQuizAnalyticsPerQuestionRates(t *testing.T) {
	f := newAnalyticsFixture()
	id, err := f.catalog.Create(validDefinition())
	require.NoError(t, err)

	f.record("zoe", id, 50, "2026-01-05",
		model.AnswerDetail{IsCorrect: true},
		model.AnswerDetail{IsCorrect: false},
	)
	f.record("amy", id, 100, "2026-01-05",
		model.AnswerDetail{IsCorrect: true},
		model.AnswerDetail{IsCorrect: true},
	)

	analytics, err := f.analytics.QuizAnalytics(id)
	require.NoError(t, err)
	require.Len(t, analytics.QuestionAnalytics, 2)
	assert.Equal(t, "2+2?", analytics.QuestionAnalytics[0].Question)
	assert.Equal(t, 100.0, analytics.QuestionAnalytics[0].CorrectRate)
	assert.Equal(t, 50.0, analytics.QuestionAnalytics[1].CorrectRate)
	assert.Equal(t, 2, analytics.QuestionAnalytics[1].TotalAttempts)
}

func TestCreatorAnalytics(t *testing.T) {
	f := newAnalyticsFixture()

	first, err := f.catalog.Create(validDefinition())
	require.NoError(t, err)
	second := validDefinition()
	second.Title = "History Quiz"
	second.Category = "History"
	secondID, err := f.catalog.Create(second)
	require.NoError(t, err)

	other := validDefinition()
	other.Creator = "someone-else"
	_, err = f.catalog.Create(other)
	require.NoError(t, err)

	f.record("zoe", first, 50, "2026-01-05")
	f.record("amy", first, 100, "2026-01-05")
	f.record("zoe", secondID, 80, "2026-01-06")

	analytics := f.analytics.CreatorAnalytics("alice")
	assert.Equal(t, 2, analytics.TotalQuizzes)
	assert.Equal(t, 3, analytics.TotalAttempts)
	assert.InDelta(t, 76.7, analytics.OverallAverageScore, 0.001)
	require.Len(t, analytics.QuizPerformance, 2)
	assert.Equal(t, 75.0, analytics.QuizPerformance[0].AverageScore)
	assert.Equal(t, 80.0, analytics.QuizPerformance[1].AverageScore)
	assert.Equal(t, []string{"Math", "History"}, analytics.Categories)
	assert.Equal(t, []string{"easy"}, analytics.Difficulties)
}

func TestCreatorAnalyticsNoQuizzes(t *testing.T) {
	f := newAnalyticsFixture()

	analytics := f.analytics.CreatorAnalytics("nobody")
	assert.Zero(t, analytics.TotalQuizzes)
	assert.Zero(t, analytics.OverallAverageScore)
	assert.Empty(t, analytics.QuizPerformance)
}

func TestUserStats(t *testing.T) {
	f := newAnalyticsFixture()

	id, err := f.catalog.Create(validDefinition())
	require.NoError(t, err)

	stats := f.analytics.UserStats("zoe")
	assert.Zero(t, stats.QuizzesCompleted)
	assert.Zero(t, stats.FastestTime, "no fixed time before any attempt")

	f.record("zoe", id, 100, "2026-01-05")
	f.record("zoe", id, 50, "2026-01-06")

	stats = f.analytics.UserStats("zoe")
	assert.Equal(t, 2, stats.QuizzesCompleted)
	assert.Equal(t, 75.0, stats.AverageScore)
	assert.Equal(t, 1, stats.PerfectScores)
	assert.Equal(t, 95, stats.FastestTime)
	assert.Equal(t, 1, stats.CategoriesExplored)
	assert.Zero(t, stats.QuizzesCreated)

	creatorStats := f.analytics.UserStats("alice")
	assert.Equal(t, 1, creatorStats.QuizzesCreated)
}

func TestHistoryKeepsRecordingOrder(t *testing.T) {
	f := newAnalyticsFixture()

	f.record("zoe", 1, 50, "2026-01-06")
	f.record("zoe", 2, 80, "2026-01-05")
	f.record("amy", 1, 20, "2026-01-05")

	history := f.analytics.History("zoe")
	require.Len(t, history, 2)
	assert.Equal(t, uint(1), history[0].QuizID)
	assert.Equal(t, uint(2), history[1].QuizID)
}
