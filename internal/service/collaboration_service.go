package service

import (
	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/repository"
	"quizmaster_backend/internal/util"
)

// CollaborationService enforces the invitation state machine on top of the
// catalog. Ownership is always derived from Quiz.Creator; it is synthesized
// into listings and can never be granted or revoked through this service.
type CollaborationService struct {
	Catalog *CatalogService
	Collab  *repository.CollaborationRepository
}

func NewCollaborationService(catalog *CatalogService, collab *repository.CollaborationRepository) *CollaborationService {
	return &CollaborationService{Catalog: catalog, Collab: collab}
}

// Invite creates a pending invitation. Role defaults to editor; owner is not
// an invitable role.
func (s *CollaborationService) Invite(quizID uint, inviter, invitee string, role model.CollaborationRole) (model.Invitation, error) {
	if role == "" {
		role = model.RoleEditor
	}
	if !model.InvitableRole(role) {
		return model.Invitation{}, util.Validationf("invalid collaboration role: %s", role)
	}

	quiz, err := s.Catalog.Get(quizID)
	if err != nil {
		return model.Invitation{}, err
	}
	return s.Collab.CreateInvitation(quiz, inviter, invitee, role)
}

// Respond accepts or declines a pending invitation on behalf of its invitee.
// The returned collaborator is non-nil only on accept.
func (s *CollaborationService) Respond(invitationID uint, username, action string) (model.Invitation, *model.Collaborator, error) {
	switch action {
	case "accept", "decline":
	default:
		return model.Invitation{}, nil, util.Validationf("action must be accept or decline")
	}
	return s.Collab.Respond(invitationID, username, action == "accept")
}

// Collaborators lists the quiz's collaborators with the synthesized owner
// entry first.
func (s *CollaborationService) Collaborators(quizID uint) ([]model.Collaborator, error) {
	quiz, err := s.Catalog.Get(quizID)
	if err != nil {
		return nil, err
	}

	owner := model.Collaborator{
		QuizID:   quiz.ID,
		Username: quiz.Creator,
		Role:     model.RoleOwner,
		Status:   model.CollaboratorActive,
		JoinedAt: quiz.CreatedAt,
	}
	return append([]model.Collaborator{owner}, s.Collab.ActiveCollaborators(quiz.ID)...), nil
}

func (s *CollaborationService) Remove(quizID uint, username, requestedBy string) error {
	quiz, err := s.Catalog.Get(quizID)
	if err != nil {
		return err
	}
	return s.Collab.Remove(quiz, username, requestedBy)
}

func (s *CollaborationService) PendingInvitations(username string) []model.Invitation {
	return s.Collab.PendingInvitations(username)
}

// CollaborativeQuizzes joins the caller's active collaborations with the
// catalog entries they refer to.
func (s *CollaborationService) CollaborativeQuizzes(username string) []model.CollaborativeQuiz {
	out := []model.CollaborativeQuiz{}
	for _, collab := range s.Collab.CollaborationsFor(username) {
		quiz := s.Catalog.Catalog.FindByID(collab.QuizID)
		if quiz == nil {
			continue
		}
		out = append(out, model.CollaborativeQuiz{
			Quiz:              *quiz,
			CollaborationRole: collab.Role,
			JoinedAt:          collab.JoinedAt,
		})
	}
	return out
}
