package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quizmaster_backend/internal/repository"
	"quizmaster_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalog := service.NewCatalogService(repository.NewCatalogRepository())
	attempts := repository.NewAttemptRepository()
	scoring := service.NewScoringService(catalog, attempts)
	collaboration := service.NewCollaborationService(catalog, repository.NewCollaborationRepository())
	analytics := service.NewAnalyticsService(catalog, attempts, nil)
	export := service.NewExportService(catalog, attempts, &service.StorageService{})

	quizController := NewQuizController(catalog, scoring, export)
	collaborationController := NewCollaborationController(collaboration)
	analyticsController := NewAnalyticsController(analytics, nil, nil)

	router := gin.New()
	router.POST("/create-quiz", quizController.CreateQuiz)
	router.GET("/quizzes", quizController.AllQuizzes)
	router.GET("/api/quizzes", quizController.ListQuizzes)
	router.GET("/api/quizzes/:quiz_id", quizController.GetQuiz)
	router.GET("/categories", quizController.Categories)
	router.GET("/search", quizController.Search)
	router.POST("/submit-quiz", quizController.SubmitQuiz)
	router.GET("/export-quiz/:quiz_id", quizController.ExportQuiz)
	router.GET("/export-multiple-quizzes", quizController.ExportMultipleQuizzes)
	router.POST("/import-quiz", quizController.ImportQuiz)
	router.GET("/leaderboard", analyticsController.Leaderboard)
	router.GET("/quiz-analytics/:quiz_id", analyticsController.QuizAnalytics)
	router.POST("/quiz-collaboration/invite", collaborationController.Invite)
	router.POST("/quiz-collaboration/respond-invitation", collaborationController.Respond)
	router.GET("/quiz-collaboration/invitations/:username", collaborationController.Invitations)
	router.GET("/quiz-collaboration/:quiz_id/collaborators", collaborationController.Collaborators)
	router.DELETE("/quiz-collaboration/:quiz_id/collaborators/:username", collaborationController.RemoveCollaborator)
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

const mathQuiz = `{
	"title": "Math Quiz",
	"description": "Basic arithmetic",
	"category": "Math",
	"difficulty": "easy",
	"time_limit": 300,
	"creator": "alice",
	"questions": [
		{"question": "2+2?", "options": ["3", "4"], "correct": "B"},
		{"question": "3+3?", "options": ["6", "7"], "correct": "A"}
	]
}`

func TestCreateQuizEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := do(router, http.MethodPost, "/create-quiz", mathQuiz)
	require.Equal(t, http.StatusOK, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, "Quiz created successfully", payload["message"])
	assert.Equal(t, float64(1), payload["quiz_id"])
}

func TestCreateQuizValidationError(t *testing.T) {
	router := newTestRouter()

	rec := do(router, http.MethodPost, "/create-quiz", `{"description": "no title"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, float64(400), payload["code"])
	assert.Equal(t, "Missing required field: title", payload["message"])
}

func TestQuizListingAndDetail(t *testing.T) {
	router := newTestRouter()
	require.Equal(t, http.StatusOK, do(router, http.MethodPost, "/create-quiz", mathQuiz).Code)

	rec := do(router, http.MethodGet, "/quizzes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	payload := decode(t, rec)
	quizzes := payload["quizzes"].([]interface{})
	require.Len(t, quizzes, 1)
	summary := quizzes[0].(map[string]interface{})
	assert.Equal(t, float64(2), summary["question_count"])

	rec = do(router, http.MethodGet, "/api/quizzes/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode(t, rec)
	questions := detail["questions"].([]interface{})
	require.Len(t, questions, 2)
	first := questions[0].(map[string]interface{})
	assert.NotContains(t, first, "correct", "answer key must be withheld")

	rec = do(router, http.MethodGet, "/api/quizzes/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitQuizEndpoint(t *testing.T) {
	router := newTestRouter()
	require.Equal(t, http.StatusOK, do(router, http.MethodPost, "/create-quiz", mathQuiz).Code)

	body := `{"quiz_id": 1, "username": "zoe", "time_taken": 40, "answers": [
		{"question_id": 1, "answer": "B"},
		{"question_id": 2, "answer": "B"}
	]}`
	rec := do(router, http.MethodPost, "/submit-quiz", body)
	require.Equal(t, http.StatusOK, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, float64(50), payload["score"])
	assert.Equal(t, float64(1), payload["correct"])
	assert.Equal(t, float64(2), payload["total"])
	details := payload["detailed_results"].([]interface{})
	require.Len(t, details, 2)
	assert.Equal(t, true, details[0].(map[string]interface{})["is_correct"])
	assert.Equal(t, false, details[1].(map[string]interface{})["is_correct"])
}

func TestSubmitQuizUnknownQuiz(t *testing.T) {
	router := newTestRouter()

	rec := do(router, http.MethodPost, "/submit-quiz", `{"quiz_id": 7, "answers": []}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCollaborationFlowOverHTTP(t *testing.T) {
	router := newTestRouter()
	require.Equal(t, http.StatusOK, do(router, http.MethodPost, "/create-quiz", mathQuiz).Code)

	rec := do(router, http.MethodPost, "/quiz-collaboration/invite",
		`{"quiz_id": 1, "inviter": "alice", "invitee": "bob"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, "Invitation sent successfully", payload["message"])
	assert.Equal(t, float64(1), payload["invitation_id"])

	rec = do(router, http.MethodPost, "/quiz-collaboration/invite",
		`{"quiz_id": 1, "inviter": "mallory", "invitee": "carol"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(router, http.MethodGet, "/quiz-collaboration/invitations/bob", "")
	require.Equal(t, http.StatusOK, rec.Code)
	invitations := decode(t, rec)["invitations"].([]interface{})
	require.Len(t, invitations, 1)

	rec = do(router, http.MethodPost, "/quiz-collaboration/respond-invitation",
		`{"invitation_id": 1, "username": "bob", "action": "accept"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	payload = decode(t, rec)
	assert.Equal(t, "Invitation accepted", payload["message"])
	require.Contains(t, payload, "collaborator")

	// Second response to the same invitation is rejected.
	rec = do(router, http.MethodPost, "/quiz-collaboration/respond-invitation",
		`{"invitation_id": 1, "username": "bob", "action": "accept"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(router, http.MethodGet, "/quiz-collaboration/1/collaborators", "")
	require.Equal(t, http.StatusOK, rec.Code)
	collaborators := decode(t, rec)["collaborators"].([]interface{})
	require.Len(t, collaborators, 2)
	owner := collaborators[0].(map[string]interface{})
	assert.Equal(t, "alice", owner["username"])
	assert.Equal(t, "owner", owner["role"])

	rec = do(router, http.MethodDelete, "/quiz-collaboration/1/collaborators/alice",
		`{"username": "alice"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "owner can never be removed")

	rec = do(router, http.MethodDelete, "/quiz-collaboration/1/collaborators/bob",
		`{"username": "alice"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Collaborator removed successfully", decode(t, rec)["message"])
}

func TestLeaderboardPlaceholderOverHTTP(t *testing.T) {
	router := newTestRouter()

	rec := do(router, http.MethodGet, "/leaderboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decode(t, rec)["leaderboard"].([]interface{})
	require.Len(t, entries, 3)
	assert.Equal(t, "admin", entries[0].(map[string]interface{})["username"])
}

func TestExportEndpoints(t *testing.T) {
	router := newTestRouter()
	require.Equal(t, http.StatusOK, do(router, http.MethodPost, "/create-quiz", mathQuiz).Code)

	rec := do(router, http.MethodGet, "/export-quiz/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	payload := decode(t, rec)
	quizData := payload["quiz_data"].(map[string]interface{})
	assert.Equal(t, "Math Quiz", quizData["title"])
	assert.Equal(t, "1.0", quizData["export_version"])

	rec = do(router, http.MethodGet, "/export-multiple-quizzes", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No quiz IDs provided", decode(t, rec)["message"])

	rec = do(router, http.MethodGet, "/export-multiple-quizzes?quiz_ids=1,abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid quiz ID format", decode(t, rec)["message"])

	// Unknown ids are skipped, not errors.
	rec = do(router, http.MethodGet, "/export-multiple-quizzes?quiz_ids=1,99", "")
	require.Equal(t, http.StatusOK, rec.Code)
	bundle := decode(t, rec)
	quizzes := bundle["quizzes"].([]interface{})
	assert.Len(t, quizzes, 1)
}

func TestImportQuizEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := do(router, http.MethodPost, "/import-quiz", `{"quiz_data": `+mathQuiz+`, "imported_by": "carol"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, "Quiz imported successfully", payload["message"])
	assert.Equal(t, "Math Quiz", payload["quiz_title"])

	rec = do(router, http.MethodGet, "/api/quizzes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summaries []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
}
