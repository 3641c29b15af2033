package controller

import (
	"net/http"
	"strconv"
	"strings"

	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/service"
	"quizmaster_backend/internal/util"
	"quizmaster_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	CatalogService *service.CatalogService
	ScoringService *service.ScoringService
	ExportService  *service.ExportService
}

func NewQuizController(catalogService *service.CatalogService, scoringService *service.ScoringService, exportService *service.ExportService) *QuizController {
	return &QuizController{
		CatalogService: catalogService,
		ScoringService: scoringService,
		ExportService:  exportService,
	}
}

// SubmitRequest is the grading payload. Answers are matched to questions by
// position.
// swagger:model SubmitRequest
type SubmitRequest struct {
	QuizID    uint                    `json:"quiz_id" binding:"required"`
	Username  string                  `json:"username"`
	Answers   []model.SubmittedAnswer `json:"answers"`
	TimeTaken int                     `json:"time_taken"`
}

// ImportRequest wraps a quiz definition exported earlier.
// swagger:model ImportRequest
type ImportRequest struct {
	QuizData   service.QuizDefinition `json:"quiz_data"`
	ImportedBy string                 `json:"imported_by"`
}

func quizIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid quiz id")
		return 0, false
	}
	return uint(id), true
}

func summaries(quizzes []*model.Quiz) []model.QuizSummary {
	out := make([]model.QuizSummary, 0, len(quizzes))
	for _, quiz := range quizzes {
		out = append(out, quiz.Summary())
	}
	return out
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Description Validates the definition, assigns an id and stores it in the catalog
// @Tags quizzes
// @Accept json
// @Produce json
// @Param body body service.QuizDefinition true "quiz definition"
// @Success 200 {object} object
// @Failure 400 {object} util.Response
// @Router /create-quiz [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var def service.QuizDefinition
	if err := ctx.ShouldBindJSON(&def); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id, err := c.CatalogService.Create(&def)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Quiz created successfully",
		"quiz_id": id,
	})
}

// ListQuizzes godoc
// @Summary List quiz summaries
// @Description Optionally filtered by exact category and difficulty
// @Tags quizzes
// @Produce json
// @Param category query string false "exact category"
// @Param difficulty query string false "exact difficulty"
// @Success 200 {array} model.QuizSummary
// @Router /api/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes := c.CatalogService.List(ctx.Query("category"), ctx.Query("difficulty"))
	ctx.JSON(http.StatusOK, summaries(quizzes))
}

// AllQuizzes godoc
// @Summary All quiz summaries wrapped in an envelope
// @Tags quizzes
// @Produce json
// @Success 200 {object} object
// @Router /quizzes [get]
func (c *QuizController) AllQuizzes(ctx *gin.Context) {
	quizzes := c.CatalogService.List("", "")
	ctx.JSON(http.StatusOK, gin.H{"quizzes": summaries(quizzes)})
}

// GetQuiz godoc
// @Summary Quiz detail with answer keys withheld
// @Tags quizzes
// @Produce json
// @Param quiz_id path int true "quiz id"
// @Success 200 {object} object
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{quiz_id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, ok := quizIDParam(ctx, "quiz_id")
	if !ok {
		return
	}

	quiz, err := c.CatalogService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":             quiz.ID,
		"title":          quiz.Title,
		"description":    quiz.Description,
		"category":       quiz.Category,
		"difficulty":     quiz.Difficulty,
		"time_limit":     quiz.TimeLimit,
		"question_count": len(quiz.Questions),
		"questions":      quiz.PublicQuestions(),
	})
}

// Categories godoc
// @Summary Distinct quiz categories
// @Tags quizzes
// @Produce json
// @Success 200 {object} object
// @Router /categories [get]
func (c *QuizController) Categories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"categories": c.CatalogService.Categories()})
}

// QuizzesByCategory godoc
// @Summary Quizzes in a category, case-insensitive
// @Tags quizzes
// @Produce json
// @Param category path string true "category"
// @Success 200 {object} object
// @Router /quizzes/category/{category} [get]
func (c *QuizController) QuizzesByCategory(ctx *gin.Context) {
	quizzes := c.CatalogService.ByCategory(ctx.Param("category"))
	ctx.JSON(http.StatusOK, gin.H{"quizzes": quizzes})
}

// Search godoc
// @Summary Substring search over title, description and category
// @Description An empty term returns the whole catalog
// @Tags quizzes
// @Produce json
// @Param q query string false "search term"
// @Success 200 {object} object
// @Router /search [get]
func (c *QuizController) Search(ctx *gin.Context) {
	quizzes := c.CatalogService.Search(ctx.Query("q"))
	ctx.JSON(http.StatusOK, gin.H{"quizzes": quizzes})
}

// Recommendations godoc
// @Summary Recommended quizzes for a user
// @Tags quizzes
// @Produce json
// @Param username path string true "username"
// @Success 200 {object} object
// @Router /recommendations/{username} [get]
func (c *QuizController) Recommendations(ctx *gin.Context) {
	quizzes := c.CatalogService.Recommendations(6)
	ctx.JSON(http.StatusOK, gin.H{
		"recommendations":       quizzes,
		"total_recommendations": len(quizzes),
	})
}

// SubmitQuiz godoc
// @Summary Grade a submission
// @Description Scores answers positionally and records the attempt
// @Tags quizzes
// @Accept json
// @Produce json
// @Param body body SubmitRequest true "submission"
// @Success 200 {object} model.ScoreResult
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /submit-quiz [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ScoringService.Submit(req.QuizID, req.Username, req.Answers, req.TimeTaken)
	if err != nil {
		respondError(ctx, err)
		return
	}

	monitoring.QuizSubmissions.WithLabelValues(strconv.FormatUint(uint64(req.QuizID), 10)).Inc()
	ctx.JSON(http.StatusOK, result)
}

// ExportQuiz godoc
// @Summary Export one quiz with attempt statistics
// @Tags quizzes
// @Produce json
// @Param quiz_id path int true "quiz id"
// @Success 200 {object} model.QuizExport
// @Failure 404 {object} util.Response
// @Router /export-quiz/{quiz_id} [get]
func (c *QuizController) ExportQuiz(ctx *gin.Context) {
	id, ok := quizIDParam(ctx, "quiz_id")
	if !ok {
		return
	}

	export, err := c.ExportService.ExportQuiz(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, export)
}

// ExportMultipleQuizzes godoc
// @Summary Export several quizzes as one bundle
// @Description Unknown ids are skipped rather than failing the bundle
// @Tags quizzes
// @Produce json
// @Param quiz_ids query string true "comma separated quiz ids"
// @Success 200 {object} model.QuizExportBundle
// @Failure 400 {object} util.Response
// @Router /export-multiple-quizzes [get]
func (c *QuizController) ExportMultipleQuizzes(ctx *gin.Context) {
	raw := ctx.Query("quiz_ids")
	if raw == "" {
		util.BadRequest(ctx, "No quiz IDs provided")
		return
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			util.BadRequest(ctx, "Invalid quiz ID format")
			return
		}
		ids = append(ids, uint(id))
	}

	bundle := c.ExportService.ExportQuizzes(ctx.Request.Context(), ids)
	ctx.JSON(http.StatusOK, bundle)
}

// ImportQuiz godoc
// @Summary Import a previously exported quiz
// @Description Assigns a fresh id and marks the entry imported
// @Tags quizzes
// @Accept json
// @Produce json
// @Param body body ImportRequest true "export payload"
// @Success 200 {object} object
// @Failure 400 {object} util.Response
// @Router /import-quiz [post]
func (c *QuizController) ImportQuiz(ctx *gin.Context) {
	var req ImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id, err := c.CatalogService.Import(&req.QuizData, req.ImportedBy)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":    "Quiz imported successfully",
		"quiz_id":    id,
		"quiz_title": req.QuizData.Title,
	})
}
