package repository

import (
	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/util"
	"sync"
	"time"
)

// CollaborationRepository owns the collaborator and invitation collections.
// Both live under one mutex so every state transition checks its
// preconditions and mutates atomically: no partial state is ever observable.
// Permission checks are re-derived from the current collections on every call.
type CollaborationRepository struct {
	mu            sync.RWMutex
	collaborators []model.Collaborator
	invitations   []*model.Invitation
}

func NewCollaborationRepository() *CollaborationRepository {
	return &CollaborationRepository{}
}

// canManage reports whether username may manage collaborators of the quiz.
// The creator always may; otherwise an active collaborator row with one of
// the given roles is required. Callers must hold r.mu.
func (r *CollaborationRepository) canManage(quiz *model.Quiz, username string, roles ...model.CollaborationRole) bool {
	if quiz.Creator == username {
		return true
	}
	for _, c := range r.collaborators {
		if c.QuizID != quiz.ID || c.Username != username || c.Status != model.CollaboratorActive {
			continue
		}
		for _, role := range roles {
			if c.Role == role {
				return true
			}
		}
	}
	return false
}

// CreateInvitation runs the invite preconditions in order and appends a
// pending invitation. Invitation IDs follow the invitation count; nothing is
// ever deleted, so they stay unique.
func (r *CollaborationRepository) CreateInvitation(quiz *model.Quiz, inviter, invitee string, role model.CollaborationRole) (model.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.canManage(quiz, inviter, model.RoleAdmin, model.RoleOwner) {
		return model.Invitation{}, util.ErrPermissionDenied
	}
	for _, inv := range r.invitations {
		if inv.QuizID == quiz.ID && inv.Invitee == invitee && inv.Status == model.InvitationPending {
			return model.Invitation{}, util.ErrAlreadyInvited
		}
	}
	for _, c := range r.collaborators {
		if c.QuizID == quiz.ID && c.Username == invitee && c.Status == model.CollaboratorActive {
			return model.Invitation{}, util.ErrAlreadyCollaborator
		}
	}

	inv := &model.Invitation{
		ID:        uint(len(r.invitations) + 1),
		QuizID:    quiz.ID,
		QuizTitle: quiz.Title,
		Inviter:   inviter,
		Invitee:   invitee,
		Role:      role,
		Status:    model.InvitationPending,
		CreatedAt: time.Now(),
	}
	r.invitations = append(r.invitations, inv)
	return *inv, nil
}

// Respond applies the single legal transition of the invitation state machine.
// Accepting appends the collaborator row in the same critical section.
func (r *CollaborationRepository) Respond(invitationID uint, username string, accept bool) (model.Invitation, *model.Collaborator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var inv *model.Invitation
	for _, candidate := range r.invitations {
		if candidate.ID == invitationID {
			inv = candidate
			break
		}
	}
	if inv == nil {
		return model.Invitation{}, nil, util.ErrInvitationNotFound
	}
	if inv.Invitee != username {
		return model.Invitation{}, nil, util.ErrPermissionDenied
	}
	if inv.Status != model.InvitationPending {
		return model.Invitation{}, nil, util.ErrInvitationResponded
	}

	now := time.Now()
	inv.RespondedAt = &now

	if !accept {
		inv.Status = model.InvitationDeclined
		return *inv, nil, nil
	}

	inv.Status = model.InvitationAccepted
	collaborator := model.Collaborator{
		QuizID:    inv.QuizID,
		Username:  username,
		Role:      inv.Role,
		Status:    model.CollaboratorActive,
		InvitedBy: inv.Inviter,
		InvitedAt: inv.CreatedAt,
		JoinedAt:  now,
	}
	r.collaborators = append(r.collaborators, collaborator)
	return *inv, &collaborator, nil
}

// Remove checks the requester's permission, protects the owner, and removes
// exactly one active collaborator row.
func (r *CollaborationRepository) Remove(quiz *model.Quiz, username, requestedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.canManage(quiz, requestedBy, model.RoleAdmin) {
		return util.ErrPermissionDenied
	}
	if username == quiz.Creator {
		return util.ErrCannotRemoveOwner
	}

	for i, c := range r.collaborators {
		if c.QuizID == quiz.ID && c.Username == username && c.Status == model.CollaboratorActive {
			r.collaborators = append(r.collaborators[:i], r.collaborators[i+1:]...)
			return nil
		}
	}
	return util.ErrCollaboratorNotFound
}

func (r *CollaborationRepository) ActiveCollaborators(quizID uint) []model.Collaborator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Collaborator
	for _, c := range r.collaborators {
		if c.QuizID == quizID && c.Status == model.CollaboratorActive {
			out = append(out, c)
		}
	}
	return out
}

func (r *CollaborationRepository) PendingInvitations(username string) []model.Invitation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.Invitation{}
	for _, inv := range r.invitations {
		if inv.Invitee == username && inv.Status == model.InvitationPending {
			out = append(out, *inv)
		}
	}
	return out
}

func (r *CollaborationRepository) CollaborationsFor(username string) []model.Collaborator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Collaborator
	for _, c := range r.collaborators {
		if c.Username == username && c.Status == model.CollaboratorActive {
			out = append(out, c)
		}
	}
	return out
}
