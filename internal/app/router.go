package app

import (
	"quizmaster_backend/docs"
	"quizmaster_backend/internal/config"
	"quizmaster_backend/internal/middleware"
	"quizmaster_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	router.POST("/register", c.auth.Register)
	router.POST("/token", c.auth.Token)

	router.POST("/create-quiz", c.quiz.CreateQuiz)
	router.GET("/quizzes", c.quiz.AllQuizzes)
	router.GET("/quizzes/category/:category", c.quiz.QuizzesByCategory)
	router.GET("/categories", c.quiz.Categories)
	router.GET("/search", c.quiz.Search)
	router.POST("/submit-quiz", c.quiz.SubmitQuiz)
	router.GET("/recommendations/:username", c.quiz.Recommendations)
	router.GET("/export-quiz/:quiz_id", c.quiz.ExportQuiz)
	router.GET("/export-multiple-quizzes", c.quiz.ExportMultipleQuizzes)
	router.POST("/import-quiz", c.quiz.ImportQuiz)

	router.GET("/leaderboard", c.analytics.Leaderboard)
	router.GET("/quiz-analytics/:quiz_id", c.analytics.QuizAnalytics)
	router.GET("/creator-analytics/:username", c.analytics.CreatorAnalytics)
	router.GET("/user-stats/:username", c.analytics.UserStats)
	router.POST("/quiz-history", c.analytics.SubmitResult)
	router.GET("/quiz-history/:username", c.analytics.History)

	collaboration := router.Group("/quiz-collaboration")
	{
		collaboration.POST("/invite", c.collaboration.Invite)
		collaboration.POST("/respond-invitation", c.collaboration.Respond)
		collaboration.GET("/invitations/:username", c.collaboration.Invitations)
		collaboration.GET("/user/:username/quizzes", c.collaboration.UserQuizzes)
		collaboration.GET("/:quiz_id/collaborators", c.collaboration.Collaborators)
		collaboration.DELETE("/:quiz_id/collaborators/:username", c.collaboration.RemoveCollaborator)
	}

	api := router.Group("/api")
	{
		api.GET("/quizzes", c.quiz.ListQuizzes)
		api.GET("/quizzes/:quiz_id", c.quiz.GetQuiz)

		authorized := api.Group("/")
		authorized.Use(middleware.AuthMiddleware(cfg))
		{
			authorized.GET("/profile", c.auth.Profile)
		}
	}
}
