package repository

import (
	"quizmaster_backend/internal/model"
	"sync"
)

// AttemptRepository owns the append-only attempt history.
type AttemptRepository struct {
	mu       sync.RWMutex
	attempts []model.Attempt
}

func NewAttemptRepository() *AttemptRepository {
	return &AttemptRepository{}
}

func (r *AttemptRepository) Append(attempt model.Attempt) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, attempt)
}

// All returns the history in recording order.
func (r *AttemptRepository) All() []model.Attempt {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Attempt, len(r.attempts))
	copy(out, r.attempts)
	return out
}

func (r *AttemptRepository) ForQuiz(quizID uint) []model.Attempt {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Attempt
	for _, a := range r.attempts {
		if a.QuizID == quizID {
			out = append(out, a)
		}
	}
	return out
}

func (r *AttemptRepository) ForUser(username string) []model.Attempt {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.Attempt{}
	for _, a := range r.attempts {
		if a.Username == username {
			out = append(out, a)
		}
	}
	return out
}

func (r *AttemptRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.attempts)
}
