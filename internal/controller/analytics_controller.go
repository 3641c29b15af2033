package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/repository"
	"quizmaster_backend/internal/service"
	"quizmaster_backend/internal/util"
	"quizmaster_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
	Results          *repository.QuizResultRepository
	Users            *repository.UserRepository
}

func NewAnalyticsController(analyticsService *service.AnalyticsService, results *repository.QuizResultRepository, users *repository.UserRepository) *AnalyticsController {
	return &AnalyticsController{
		AnalyticsService: analyticsService,
		Results:          results,
		Users:            users,
	}
}

// ResultRequest is a durable result row to persist alongside the in-memory
// attempt history.
// swagger:model ResultRequest
type ResultRequest struct {
	Username       string          `json:"username"`
	QuizID         uint            `json:"quiz_id"`
	Score          int             `json:"score"`
	TotalQuestions int             `json:"total_questions"`
	TimeTaken      int             `json:"time_taken"`
	Answers        json.RawMessage `json:"answers"`
}

// Leaderboard godoc
// @Summary Ranked totals per user
// @Description Computed from attempt history; sample rows are served until real attempts exist
// @Tags analytics
// @Produce json
// @Success 200 {object} object
// @Router /leaderboard [get]
func (c *AnalyticsController) Leaderboard(ctx *gin.Context) {
	entries := c.AnalyticsService.Leaderboard(ctx.Request.Context())
	ctx.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}

// QuizAnalytics godoc
// @Summary Aggregates for one quiz
// @Description Score distribution, attempts over time and per-question correctness rates
// @Tags analytics
// @Produce json
// @Param quiz_id path int true "quiz id"
// @Success 200 {object} model.QuizAnalytics
// @Failure 404 {object} util.Response
// @Router /quiz-analytics/{quiz_id} [get]
func (c *AnalyticsController) QuizAnalytics(ctx *gin.Context) {
	id, ok := quizIDParam(ctx, "quiz_id")
	if !ok {
		return
	}

	analytics, err := c.AnalyticsService.QuizAnalytics(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, analytics)
}

// CreatorAnalytics godoc
// @Summary Aggregates across a creator's quizzes
// @Tags analytics
// @Produce json
// @Param username path string true "creator"
// @Success 200 {object} model.CreatorAnalytics
// @Router /creator-analytics/{username} [get]
func (c *AnalyticsController) CreatorAnalytics(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.AnalyticsService.CreatorAnalytics(ctx.Param("username")))
}

// UserStats godoc
// @Summary Headline figures for a user's dashboard
// @Tags analytics
// @Produce json
// @Param username path string true "username"
// @Success 200 {object} model.UserStats
// @Router /user-stats/{username} [get]
func (c *AnalyticsController) UserStats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.AnalyticsService.UserStats(ctx.Param("username")))
}

// History godoc
// @Summary Attempt history for a user
// @Tags analytics
// @Produce json
// @Param username path string true "username"
// @Success 200 {object} object
// @Router /quiz-history/{username} [get]
func (c *AnalyticsController) History(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"history": c.AnalyticsService.History(ctx.Param("username"))})
}

// SubmitResult godoc
// @Summary Persist a quiz result row
// @Tags analytics
// @Accept json
// @Produce json
// @Param body body ResultRequest true "result"
// @Success 200 {object} object
// @Failure 500 {object} util.Response
// @Router /quiz-history [post]
func (c *AnalyticsController) SubmitResult(ctx *gin.Context) {
	var req ResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// The demo frontend posts results without authenticating, so fall back
	// to the seeded demo account when the username is unknown.
	userID := uint(1)
	if req.Username != "" {
		if user, err := c.Users.FindByUsername(req.Username); err == nil {
			userID = user.ID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			util.LogInternalError(ctx, err)
			return
		}
	}

	quizID := req.QuizID
	if quizID == 0 {
		quizID = 1
	}
	answers := req.Answers
	if answers == nil {
		answers = json.RawMessage("{}")
	}

	result := &model.QuizResult{
		UserID:         userID,
		QuizID:         quizID,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		TimeTaken:      req.TimeTaken,
		Answers:        answers,
		CompletedAt:    time.Now(),
	}
	if err := c.Results.Create(result); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if err := c.Users.RecordResult(userID, req.Score); err != nil {
		logger.Log.Warn("failed to update user totals", zap.Uint("user_id", userID), zap.Error(err))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Quiz result submitted successfully",
		"id":      result.ID,
	})
}
