package controller

import (
	"errors"
	"net/http"
	"quizmaster_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError translates the service error taxonomy to HTTP: not-found 404,
// permission 403, conflict/validation/invalid-state 400, bad credentials 401,
// anything else 500.
func respondError(ctx *gin.Context, err error) {
	var ve *util.ValidationError
	switch {
	case errors.As(err, &ve):
		util.BadRequest(ctx, ve.Message)
	case errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrInvitationNotFound),
		errors.Is(err, util.ErrCollaboratorNotFound),
		errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx, err.Error())
	case errors.Is(err, util.ErrAlreadyInvited),
		errors.Is(err, util.ErrAlreadyCollaborator),
		errors.Is(err, util.ErrInvitationResponded),
		errors.Is(err, util.ErrCannotRemoveOwner),
		errors.Is(err, util.ErrEmptyQuiz),
		errors.Is(err, util.ErrUsernameTaken),
		errors.Is(err, util.ErrEmailRegistered):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
