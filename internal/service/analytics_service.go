package service

import (
	"context"
	"encoding/json"
	"math"
	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/repository"
	"quizmaster_backend/pkg/logger"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	leaderboardCacheKey = "quizmaster:leaderboard"
	leaderboardCacheTTL = 30 * time.Second
)

// placeholderLeaderboard is served only while no attempt has been recorded.
var placeholderLeaderboard = []model.LeaderboardEntry{
	{Username: "admin", TotalScore: 100, QuizzesTaken: 5, AverageScore: 85.0},
	{Username: "user1", TotalScore: 80, QuizzesTaken: 4, AverageScore: 80.0},
	{Username: "user2", TotalScore: 60, QuizzesTaken: 3, AverageScore: 75.0},
}

// AnalyticsService reduces the attempt history and the catalog into
// leaderboard, per-quiz and per-creator views. It never mutates either.
type AnalyticsService struct {
	Catalog  *CatalogService
	Attempts *repository.AttemptRepository
	Redis    *redis.Client // optional leaderboard cache
}

func NewAnalyticsService(catalog *CatalogService, attempts *repository.AttemptRepository, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{Catalog: catalog, Attempts: attempts, Redis: rdb}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Leaderboard groups attempts by user, ordered by summed score descending.
// Ties keep first-attempt order. With an empty history it returns the fixed
// demo dataset; real entries replace it as soon as one attempt exists, so the
// empty case is never cached.
func (s *AnalyticsService) Leaderboard(ctx context.Context) []model.LeaderboardEntry {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Bytes(); err == nil {
			var entries []model.LeaderboardEntry
			if json.Unmarshal(cached, &entries) == nil {
				return entries
			}
		}
	}

	attempts := s.Attempts.All()
	if len(attempts) == 0 {
		return placeholderLeaderboard
	}

	byUser := make(map[string]*model.LeaderboardEntry)
	order := []string{}
	for _, a := range attempts {
		entry, ok := byUser[a.Username]
		if !ok {
			entry = &model.LeaderboardEntry{Username: a.Username}
			byUser[a.Username] = entry
			order = append(order, a.Username)
		}
		entry.TotalScore += a.Score
		entry.QuizzesTaken++
	}

	entries := make([]model.LeaderboardEntry, 0, len(order))
	for _, username := range order {
		e := byUser[username]
		e.AverageScore = round1(e.TotalScore / float64(e.QuizzesTaken))
		entries = append(entries, *e)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalScore > entries[j].TotalScore
	})

	if s.Redis != nil {
		if payload, err := json.Marshal(entries); err == nil {
			if err := s.Redis.Set(ctx, leaderboardCacheKey, payload, leaderboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
			}
		}
	}
	return entries
}

// QuizAnalytics reduces the attempts of one quiz: mean score, a four-bucket
// histogram with upper-edge-inclusive boundaries, attempts per calendar day,
// and per-question correctness rates.
func (s *AnalyticsService) QuizAnalytics(quizID uint) (*model.QuizAnalytics, error) {
	quiz, err := s.Catalog.Get(quizID)
	if err != nil {
		return nil, err
	}

	attempts := s.Attempts.ForQuiz(quiz.ID)
	analytics := &model.QuizAnalytics{
		Quiz:              quiz,
		ScoreDistribution: []model.ScoreBucket{},
		AttemptsOverTime:  []model.DateCount{},
		QuestionAnalytics: []model.QuestionStat{},
	}
	if len(attempts) == 0 {
		return analytics, nil
	}

	var sum float64
	for _, a := range attempts {
		sum += a.Score
	}
	analytics.TotalAttempts = len(attempts)
	analytics.AverageScore = round1(sum / float64(len(attempts)))
	analytics.CompletionRate = 100

	// Buckets [0,25], (25,50], (50,75], (75,100].
	labels := []string{"0-25", "26-50", "51-75", "76-100"}
	counts := make([]int, 4)
	for _, a := range attempts {
		switch {
		case a.Score <= 25:
			counts[0]++
		case a.Score <= 50:
			counts[1]++
		case a.Score <= 75:
			counts[2]++
		default:
			counts[3]++
		}
	}
	for i, label := range labels {
		analytics.ScoreDistribution = append(analytics.ScoreDistribution, model.ScoreBucket{Range: label, Count: counts[i]})
	}

	byDate := make(map[string]int)
	for _, a := range attempts {
		byDate[a.Date.Format("2006-01-02")]++
	}
	for date, count := range byDate {
		analytics.AttemptsOverTime = append(analytics.AttemptsOverTime, model.DateCount{Date: date, Count: count})
	}
	sort.Slice(analytics.AttemptsOverTime, func(i, j int) bool {
		return analytics.AttemptsOverTime[i].Date < analytics.AttemptsOverTime[j].Date
	})

	for i, question := range quiz.Questions {
		recorded, correct := 0, 0
		for _, a := range attempts {
			if i < len(a.Details) {
				recorded++
				if a.Details[i].IsCorrect {
					correct++
				}
			}
		}
		rate := 0.0
		if recorded > 0 {
			rate = float64(correct) / float64(recorded) * 100
		}
		analytics.QuestionAnalytics = append(analytics.QuestionAnalytics, model.QuestionStat{
			Question:      question.Text,
			CorrectRate:   rate,
			TotalAttempts: recorded,
		})
	}

	return analytics, nil
}

// CreatorAnalytics aggregates attempt statistics over every quiz a user
// authored.
func (s *AnalyticsService) CreatorAnalytics(username string) *model.CreatorAnalytics {
	analytics := &model.CreatorAnalytics{
		QuizPerformance: []model.QuizPerformance{},
		Categories:      []string{},
		Difficulties:    []string{},
	}

	var totalScore float64
	var attemptCount int
	seenCategory := make(map[string]bool)
	seenDifficulty := make(map[string]bool)

	for _, quiz := range s.Catalog.Catalog.List() {
		if quiz.Creator != username {
			continue
		}
		analytics.TotalQuizzes++

		attempts := s.Attempts.ForQuiz(quiz.ID)
		analytics.TotalAttempts += len(attempts)

		avg := 0.0
		if len(attempts) > 0 {
			var sum float64
			for _, a := range attempts {
				sum += a.Score
			}
			avg = round1(sum / float64(len(attempts)))
			totalScore += sum
			attemptCount += len(attempts)
		}

		analytics.QuizPerformance = append(analytics.QuizPerformance, model.QuizPerformance{
			QuizID:       quiz.ID,
			QuizTitle:    quiz.Title,
			Attempts:     len(attempts),
			AverageScore: avg,
			Category:     quiz.Category,
			Difficulty:   quiz.Difficulty,
		})
		if !seenCategory[quiz.Category] {
			seenCategory[quiz.Category] = true
			analytics.Categories = append(analytics.Categories, quiz.Category)
		}
		if !seenDifficulty[quiz.Difficulty] {
			seenDifficulty[quiz.Difficulty] = true
			analytics.Difficulties = append(analytics.Difficulties, quiz.Difficulty)
		}
	}

	if attemptCount > 0 {
		analytics.OverallAverageScore = round1(totalScore / float64(attemptCount))
	}
	return analytics
}

// UserStats summarizes a user's attempt history and authored quizzes.
func (s *AnalyticsService) UserStats(username string) *model.UserStats {
	stats := &model.UserStats{}

	for _, quiz := range s.Catalog.Catalog.List() {
		if quiz.Creator == username {
			stats.QuizzesCreated++
		}
	}

	attempts := s.Attempts.ForUser(username)
	if len(attempts) == 0 {
		return stats
	}

	var sum float64
	categories := make(map[string]bool)
	for _, a := range attempts {
		sum += a.Score
		if a.Score == 100 {
			stats.PerfectScores++
		}
		if quiz := s.Catalog.Catalog.FindByID(a.QuizID); quiz != nil {
			categories[quiz.Category] = true
		}
	}

	stats.QuizzesCompleted = len(attempts)
	stats.AverageScore = round1(sum / float64(len(attempts)))
	stats.CategoriesExplored = len(categories)
	// Fixed value carried over from the reference frontend contract.
	stats.FastestTime = 95
	return stats
}

// History returns a user's attempts in recording order.
func (s *AnalyticsService) History(username string) []model.Attempt {
	return s.Attempts.ForUser(username)
}
