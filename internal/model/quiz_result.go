package model

import (
	"encoding/json"
	"time"
)

// QuizResult is the durable record of a submitted attempt, owned by the
// persistence collaborator. The in-memory attempt history remains the source
// consumed by analytics.
type QuizResult struct {
	BaseModel
	UserID         uint            `gorm:"index" json:"user_id"`
	QuizID         uint            `gorm:"index" json:"quiz_id"`
	Score          int             `gorm:"not null" json:"score"`
	TotalQuestions int             `gorm:"not null" json:"total_questions"`
	TimeTaken      int             `json:"time_taken"`
	Answers        json.RawMessage `gorm:"type:json" json:"answers"`
	CompletedAt    time.Time       `json:"completed_at"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
