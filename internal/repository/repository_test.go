package repository

import (
	"fmt"
	"sync"
	"testing"

	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogInsertAssignsSequentialIDs(t *testing.T) {
	repo := NewCatalogRepository()

	first := repo.Insert(&model.Quiz{Title: "one"})
	second := repo.Insert(&model.Quiz{Title: "two"})
	assert.Equal(t, uint(1), first)
	assert.Equal(t, uint(2), second)

	assert.Nil(t, repo.FindByID(3))
	require.NotNil(t, repo.FindByID(2))
	assert.Equal(t, "two", repo.FindByID(2).Title)
}

func TestCatalogConcurrentInserts(t *testing.T) {
	repo := NewCatalogRepository()

	const n = 64
	var wg sync.WaitGroup
	ids := make(chan uint, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids <- repo.Insert(&model.Quiz{Title: fmt.Sprintf("quiz-%d", i)})
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Equal(t, n, repo.Count())
}

func TestConcurrentInvitesKeepSinglePendingInvariant(t *testing.T) {
	repo := NewCollaborationRepository()
	quiz := &model.Quiz{ID: 1, Title: "Math Quiz", Creator: "alice"}

	// Many racing invites for the same invitee: exactly one may win.
	const n = 32
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateInvitation(quiz, "alice", "bob", model.RoleEditor)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, util.ErrAlreadyInvited)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestAttemptRepositoryFilters(t *testing.T) {
	repo := NewAttemptRepository()

	repo.Append(model.Attempt{Username: "zoe", QuizID: 1})
	repo.Append(model.Attempt{Username: "zoe", QuizID: 2})
	repo.Append(model.Attempt{Username: "amy", QuizID: 1})

	assert.Len(t, repo.All(), 3)
	assert.Len(t, repo.ForUser("zoe"), 2)
	assert.Len(t, repo.ForQuiz(1), 2)
	assert.Equal(t, 3, repo.Count())
}
