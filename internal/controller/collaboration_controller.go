package controller

import (
	"net/http"

	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/service"
	"quizmaster_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CollaborationController struct {
	CollaborationService *service.CollaborationService
}

func NewCollaborationController(collaborationService *service.CollaborationService) *CollaborationController {
	return &CollaborationController{CollaborationService: collaborationService}
}

// InviteRequest asks to add invitee to a quiz's collaborators. Role defaults
// to editor when omitted.
// swagger:model InviteRequest
type InviteRequest struct {
	QuizID  uint   `json:"quiz_id" binding:"required"`
	Inviter string `json:"inviter" binding:"required"`
	Invitee string `json:"invitee" binding:"required"`
	Role    string `json:"role"`
}

// RespondRequest answers a pending invitation with accept or decline.
// swagger:model RespondRequest
type RespondRequest struct {
	InvitationID uint   `json:"invitation_id" binding:"required"`
	Username     string `json:"username" binding:"required"`
	Action       string `json:"action" binding:"required"`
}

// RemoveCollaboratorRequest names the user requesting the removal.
// swagger:model RemoveCollaboratorRequest
type RemoveCollaboratorRequest struct {
	Username string `json:"username" binding:"required"`
}

// Invite godoc
// @Summary Invite a user to collaborate on a quiz
// @Description Inviter must be the quiz creator or an active admin/owner collaborator
// @Tags collaboration
// @Accept json
// @Produce json
// @Param body body InviteRequest true "invitation"
// @Success 200 {object} object
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quiz-collaboration/invite [post]
func (c *CollaborationController) Invite(ctx *gin.Context) {
	var req InviteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	invitation, err := c.CollaborationService.Invite(req.QuizID, req.Inviter, req.Invitee, model.CollaborationRole(req.Role))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":       "Invitation sent successfully",
		"invitation_id": invitation.ID,
	})
}

// Respond godoc
// @Summary Accept or decline a pending invitation
// @Description Only the invitee may respond, and only once
// @Tags collaboration
// @Accept json
// @Produce json
// @Param body body RespondRequest true "response"
// @Success 200 {object} object
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quiz-collaboration/respond-invitation [post]
func (c *CollaborationController) Respond(ctx *gin.Context) {
	var req RespondRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	_, collaborator, err := c.CollaborationService.Respond(req.InvitationID, req.Username, req.Action)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if collaborator != nil {
		ctx.JSON(http.StatusOK, gin.H{
			"message":      "Invitation accepted",
			"collaborator": collaborator,
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Invitation declined"})
}

// Invitations godoc
// @Summary Pending invitations for a user
// @Tags collaboration
// @Produce json
// @Param username path string true "invitee"
// @Success 200 {object} object
// @Router /quiz-collaboration/invitations/{username} [get]
func (c *CollaborationController) Invitations(ctx *gin.Context) {
	invitations := c.CollaborationService.PendingInvitations(ctx.Param("username"))
	ctx.JSON(http.StatusOK, gin.H{"invitations": invitations})
}

// Collaborators godoc
// @Summary Collaborators on a quiz, implicit owner first
// @Tags collaboration
// @Produce json
// @Param quiz_id path int true "quiz id"
// @Success 200 {object} object
// @Failure 404 {object} util.Response
// @Router /quiz-collaboration/{quiz_id}/collaborators [get]
func (c *CollaborationController) Collaborators(ctx *gin.Context) {
	id, ok := quizIDParam(ctx, "quiz_id")
	if !ok {
		return
	}

	collaborators, err := c.CollaborationService.Collaborators(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"collaborators": collaborators})
}

// RemoveCollaborator godoc
// @Summary Remove a collaborator from a quiz
// @Description Requester must be the creator or an active admin; the owner can never be removed
// @Tags collaboration
// @Accept json
// @Produce json
// @Param quiz_id path int true "quiz id"
// @Param username path string true "collaborator to remove"
// @Param body body RemoveCollaboratorRequest true "requesting user"
// @Success 200 {object} object
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quiz-collaboration/{quiz_id}/collaborators/{username} [delete]
func (c *CollaborationController) RemoveCollaborator(ctx *gin.Context) {
	id, ok := quizIDParam(ctx, "quiz_id")
	if !ok {
		return
	}

	var req RemoveCollaboratorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.CollaborationService.Remove(id, ctx.Param("username"), req.Username); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Collaborator removed successfully"})
}

// UserQuizzes godoc
// @Summary Quizzes a user collaborates on
// @Tags collaboration
// @Produce json
// @Param username path string true "username"
// @Success 200 {object} object
// @Router /quiz-collaboration/user/{username}/quizzes [get]
func (c *CollaborationController) UserQuizzes(ctx *gin.Context) {
	quizzes := c.CollaborationService.CollaborativeQuizzes(ctx.Param("username"))
	ctx.JSON(http.StatusOK, gin.H{"collaborative_quizzes": quizzes})
}
