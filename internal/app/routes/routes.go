package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selimk/teamhub/internal/app/controllers"
	"github.com/selimk/teamhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	teamController *controllers.TeamController,
	questionController *controllers.QuestionController,
	authMiddleware *middleware.AuthMiddleware,
	storagePath string,
) {
	// Health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Uploaded files (profile and team images)
	router.Static("/uploads", storagePath)

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
		auth.GET("/designations", authController.Designations)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// User routes
		users := authenticated.Group("/users")
		{
			users.GET("/me", userController.GetMyProfile)
			users.GET("", userController.ListUsers)
		}

		// Team routes
		teams := authenticated.Group("/teams")
		{
			teams.POST("", teamController.CreateTeam)
			teams.GET("", teamController.GetTeams)
			teams.GET("/:id", teamController.GetTeamByID)

			// Lead-only operations; authorization is enforced in the services
			teams.GET("/:id/candidates", teamController.GetCandidates)
			teams.POST("/:id/members", teamController.AddMember)

			// Daily questions
			teams.POST("/:id/questions", questionController.CreateQuestion)
			teams.GET("/:id/questions", questionController.ListQuestions)
			teams.POST("/:id/questions/:questionId/answers", questionController.SubmitAnswer)
			teams.GET("/:id/questions/:questionId/answers", questionController.ListAnswers)
		}
	}
}
