package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ethos-training/ethos/internal/app/controllers"
	"github.com/ethos-training/ethos/internal/app/models"
	"github.com/ethos-training/ethos/internal/middleware"
	"github.com/ethos-training/ethos/internal/pkg/ratelimit"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	moduleController *controllers.ModuleController,
	progressController *controllers.ProgressController,
	quizController *controllers.QuizController,
	authMiddleware *middleware.AuthMiddleware,
	apiLimiter *ratelimit.Limiter,
	loginLimiter *ratelimit.Limiter,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(middleware.RateLimit(apiLimiter))

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		// Login carries a stricter per-IP budget than the rest of the API
		auth.POST("/login", middleware.RateLimit(loginLimiter), authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)
		authenticated.POST("/auth/logout", authController.Logout)

		users := authenticated.Group("/users")
		users.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			users.GET("", authController.ListUsers)
		}

		modules := authenticated.Group("/modules")
		{
			modules.GET("", moduleController.ListModules)
			modules.GET("/:id", moduleController.GetModule)
			modules.GET("/:id/quiz", quizController.GetQuiz)
			modules.POST("/:id/quiz/submit", quizController.SubmitQuiz)

			modulesAdmin := modules.Group("")
			modulesAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				modulesAdmin.POST("", moduleController.CreateModule)
				modulesAdmin.PUT("/:id", moduleController.UpdateModule)
				modulesAdmin.DELETE("/:id", moduleController.DeleteModule)
			}
		}

		progress := authenticated.Group("/progress")
		{
			progress.GET("", progressController.ListProgress)
			progress.GET("/summary", progressController.GetSummary)
			progress.POST("/:moduleId/start", progressController.StartModule)
			progress.GET("/:moduleId", progressController.GetModuleProgress)
			progress.PUT("/:moduleId", progressController.UpdateProgress)

			progressAdmin := progress.Group("/admin")
			progressAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				progressAdmin.GET("/overview", progressController.GetAdminOverview)
				progressAdmin.GET("/export", progressController.ExportProgress)
			}
		}
	}
}
