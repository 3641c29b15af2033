package util

import "errors"

var (
	// Not found (404)
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrCollaboratorNotFound = errors.New("collaborator not found")
	ErrUserNotFound         = errors.New("user not found")

	// Permission denied (403)
	ErrPermissionDenied = errors.New("insufficient permissions")

	// Conflict / validation / invalid state (400)
	ErrValidation          = errors.New("validation failed")
	ErrAlreadyInvited      = errors.New("user already invited")
	ErrAlreadyCollaborator = errors.New("user already collaborating")
	ErrInvitationResponded = errors.New("invitation already responded to")
	ErrCannotRemoveOwner   = errors.New("cannot remove quiz owner")
	ErrEmptyQuiz           = errors.New("quiz has no questions")

	// Auth
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailRegistered    = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("incorrect username or password")
)
