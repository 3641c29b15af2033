package model

import "time"

type CollaborationRole string

const (
	RoleOwner    CollaborationRole = "owner"
	RoleAdmin    CollaborationRole = "admin"
	RoleEditor   CollaborationRole = "editor"
	RoleReviewer CollaborationRole = "reviewer"
	RoleViewer   CollaborationRole = "viewer"
)

// InvitableRole reports whether a role may be granted through an invitation.
// Ownership is derived from Quiz.Creator and is never granted.
func InvitableRole(r CollaborationRole) bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleReviewer, RoleViewer:
		return true
	}
	return false
}

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

const CollaboratorActive = "active"

// Collaborator is an active, non-owner role on a quiz. The owner is never
// stored as a row; listings synthesize it from Quiz.Creator.
type Collaborator struct {
	QuizID    uint              `json:"quiz_id"`
	Username  string            `json:"username"`
	Role      CollaborationRole `json:"role"`
	Status    string            `json:"status"`
	InvitedBy string            `json:"invited_by,omitempty"`
	InvitedAt time.Time         `json:"invited_at,omitempty"`
	JoinedAt  time.Time         `json:"joined_at"`
}

// Invitation moves strictly forward: pending to accepted or declined, both
// terminal. Invitations are never deleted.
type Invitation struct {
	ID          uint              `json:"id"`
	QuizID      uint              `json:"quiz_id"`
	QuizTitle   string            `json:"quiz_title"`
	Inviter     string            `json:"inviter"`
	Invitee     string            `json:"invitee"`
	Role        CollaborationRole `json:"role"`
	Status      InvitationStatus  `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	RespondedAt *time.Time        `json:"responded_at,omitempty"`
}

// CollaborativeQuiz joins a quiz with the caller's collaboration role.
type CollaborativeQuiz struct {
	Quiz
	CollaborationRole CollaborationRole `json:"collaboration_role"`
	JoinedAt          time.Time         `json:"joined_at"`
}
