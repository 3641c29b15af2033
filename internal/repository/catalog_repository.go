package repository

import (
	"quizmaster_backend/internal/model"
	"sync"
)

// CatalogRepository owns the in-memory quiz catalog. Inserts are append-only
// with sequential IDs; entries are immutable once inserted, so reads hand out
// shared pointers.
type CatalogRepository struct {
	mu      sync.RWMutex
	quizzes []*model.Quiz
	nextID  uint
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{nextID: 1}
}

// Insert assigns the next sequential identifier and appends the quiz.
func (r *CatalogRepository) Insert(quiz *model.Quiz) uint {
	r.mu.Lock()
	defer r.mu.Unlock()

	quiz.ID = r.nextID
	r.nextID++
	r.quizzes = append(r.quizzes, quiz)
	return quiz.ID
}

func (r *CatalogRepository) FindByID(id uint) *model.Quiz {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, q := range r.quizzes {
		if q.ID == id {
			return q
		}
	}
	return nil
}

// List returns every quiz in insertion order.
func (r *CatalogRepository) List() []*model.Quiz {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Quiz, len(r.quizzes))
	copy(out, r.quizzes)
	return out
}

func (r *CatalogRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.quizzes)
}
