package api

import (
	"net/http"

	"alcyxob/peakplan/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	goalService service.GoalService,
	trainingService service.TrainingService,
) {

	authHandler := NewAuthHandler(authService)
	goalHandler := NewGoalHandler(goalService)
	trainingHandler := NewTrainingHandler(trainingService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Profile ---
		protected.GET("/me", authHandler.GetProfile)
		protected.PUT("/me", authHandler.UpdateProfile)

		// --- Goal Routes ---
		goalGroup := protected.Group("/goals")
		{
			goalGroup.POST("", goalHandler.CreateGoal)
			goalGroup.GET("", goalHandler.ListGoals)
			goalGroup.GET("/active", goalHandler.GetActiveGoal)
			goalGroup.GET("/:goalId", goalHandler.GetGoal)
			goalGroup.PUT("/:goalId", goalHandler.UpdateGoal)
			goalGroup.PUT("/:goalId/status", goalHandler.UpdateGoalStatus)
			goalGroup.DELETE("/:goalId", goalHandler.DeleteGoal)

			// --- Training Plan Routes (per goal) ---
			// POST /api/v1/goals/{goalId}/activate
			goalGroup.POST("/:goalId/activate", trainingHandler.ActivateGoal)
			goalGroup.GET("/:goalId/plan", trainingHandler.GetPlan)
			goalGroup.GET("/:goalId/workouts", trainingHandler.GetWorkouts)
			goalGroup.GET("/:goalId/weeks/:week", trainingHandler.GetWeek)
			goalGroup.POST("/:goalId/refresh", trainingHandler.RefreshWindow)
			goalGroup.GET("/:goalId/status", trainingHandler.GetStatus)
			goalGroup.POST("/:goalId/export", trainingHandler.ExportPlan)
		}

		// --- Workouts ---
		// POST /api/v1/workouts/{workoutId}/complete
		protected.GET("/workouts/:workoutId", trainingHandler.GetWorkout)
		protected.POST("/workouts/:workoutId/complete", trainingHandler.CompleteWorkout)
	}
}
