package model

// LeaderboardEntry aggregates all attempts of one user.
type LeaderboardEntry struct {
	Username     string  `json:"username"`
	TotalScore   float64 `json:"total_score"`
	QuizzesTaken int     `json:"quizzes_taken"`
	AverageScore float64 `json:"average_score"`
}

type ScoreBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type QuestionStat struct {
	Question      string  `json:"question"`
	CorrectRate   float64 `json:"correct_rate"`
	TotalAttempts int     `json:"total_attempts"`
}

// QuizAnalytics is the per-quiz reduction of the attempt history.
type QuizAnalytics struct {
	Quiz              *Quiz          `json:"quiz"`
	TotalAttempts     int            `json:"total_attempts"`
	AverageScore      float64        `json:"average_score"`
	CompletionRate    float64        `json:"completion_rate"`
	ScoreDistribution []ScoreBucket  `json:"score_distribution"`
	AttemptsOverTime  []DateCount    `json:"attempts_over_time"`
	QuestionAnalytics []QuestionStat `json:"question_analytics"`
}

type QuizPerformance struct {
	QuizID       uint    `json:"quiz_id"`
	QuizTitle    string  `json:"quiz_title"`
	Attempts     int     `json:"attempts"`
	AverageScore float64 `json:"average_score"`
	Category     string  `json:"category"`
	Difficulty   string  `json:"difficulty"`
}

// CreatorAnalytics reduces the history over every quiz a user authored.
type CreatorAnalytics struct {
	TotalQuizzes        int               `json:"total_quizzes"`
	TotalAttempts       int               `json:"total_attempts"`
	OverallAverageScore float64           `json:"overall_average_score"`
	QuizPerformance     []QuizPerformance `json:"quiz_performance"`
	Categories          []string          `json:"categories"`
	Difficulties        []string          `json:"difficulties"`
}

type UserStats struct {
	QuizzesCompleted   int     `json:"quizzesCompleted"`
	AverageScore       float64 `json:"averageScore"`
	PerfectScores      int     `json:"perfectScores"`
	FastestTime        int     `json:"fastestTime"`
	CategoriesExplored int     `json:"categoriesExplored"`
	QuizzesCreated     int     `json:"quizzesCreated"`
}
