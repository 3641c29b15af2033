package model

import "time"

// SubmittedAnswer carries the label the client picked. The question_id is
// accepted for wire compatibility but answers are matched to questions by
// position, not by id.
type SubmittedAnswer struct {
	QuestionID uint   `json:"question_id"`
	Answer     string `json:"answer"`
}

// AnswerDetail duplicates the question content into the result so historical
// attempts stay interpretable independent of the catalog.
type AnswerDetail struct {
	Question      string   `json:"question"`
	YourAnswer    string   `json:"your_answer"`
	CorrectAnswer string   `json:"correct_answer"`
	IsCorrect     bool     `json:"is_correct"`
	Options       []string `json:"options"`
}

// ScoreResult is the outcome of grading one submission.
type ScoreResult struct {
	Score   float64        `json:"score"`
	Correct int            `json:"correct"`
	Total   int            `json:"total"`
	Details []AnswerDetail `json:"detailed_results"`
}

// Attempt is one scored submission, recorded once and never mutated.
type Attempt struct {
	Username  string         `json:"username"`
	QuizID    uint           `json:"quiz_id"`
	QuizTitle string         `json:"quiz_title"`
	Score     float64        `json:"score"`
	Correct   int            `json:"correct"`
	Total     int            `json:"total"`
	TimeTaken int            `json:"time_taken"`
	Details   []AnswerDetail `json:"detailed_results"`
	Date      time.Time      `json:"date"`
}
