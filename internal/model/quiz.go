package model

import "time"

// Question belongs to exactly one quiz. Its position in the quiz's question
// slice is significant: submitted answers are matched by position.
type Question struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Correct string   `json:"correct"`
	Points  int      `json:"points"`
}

// Quiz is a catalog entry. Quizzes are created once (create or import) and
// never mutated in place.
type Quiz struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Difficulty  string     `json:"difficulty"`
	TimeLimit   int        `json:"time_limit"`
	Questions   []Question `json:"questions"`
	Creator     string     `json:"creator"`
	CreatedAt   time.Time  `json:"created_date"`
	Imported    bool       `json:"imported,omitempty"`
}

// QuizSummary is the list representation without questions.
type QuizSummary struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
	TimeLimit     int    `json:"time_limit"`
	QuestionCount int    `json:"question_count"`
	Creator       string `json:"creator"`
}

// PublicQuestion is the detail representation with the answer key withheld.
type PublicQuestion struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Points  int      `json:"points"`
}

func (q *Quiz) Summary() QuizSummary {
	return QuizSummary{
		ID:            q.ID,
		Title:         q.Title,
		Description:   q.Description,
		Category:      q.Category,
		Difficulty:    q.Difficulty,
		TimeLimit:     q.TimeLimit,
		QuestionCount: len(q.Questions),
		Creator:       q.Creator,
	}
}

func (q *Quiz) PublicQuestions() []PublicQuestion {
	out := make([]PublicQuestion, len(q.Questions))
	for i, question := range q.Questions {
		out[i] = PublicQuestion{
			Text:    question.Text,
			Options: question.Options,
			Points:  question.Points,
		}
	}
	return out
}
