package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ThilinaShalom/fitgen.AI/config"
	"github.com/ThilinaShalom/fitgen.AI/internal/domain"
	"github.com/ThilinaShalom/fitgen.AI/internal/usecase"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, auth *usecase.AuthService) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", handler.Register)
			authRoutes.POST("/login", handler.Login)
			authRoutes.POST("/logout", AuthMiddleware(auth), handler.Logout)
			authRoutes.POST("/forgot-password", handler.ForgotPassword)
			authRoutes.POST("/reset-password", handler.ResetPassword)
		}

		plans := v1.Group("/plans", AuthMiddleware(auth))
		{
			plans.POST("/generate", RequireUserType(domain.UserTypeCustomer), handler.GeneratePlan)
			plans.GET("", RequireUserType(domain.UserTypeCustomer), handler.CustomerDashboard)
			plans.GET("/requested", RequireUserType(domain.UserTypeCoach), handler.CoachDashboard)
			plans.POST("/:id/send", RequireUserType(domain.UserTypeCustomer), handler.SendPlanToCoach)
			plans.POST("/:id/review", RequireUserType(domain.UserTypeCoach), handler.ReviewPlan)
			plans.DELETE("/:id", RequireUserType(domain.UserTypeCustomer), handler.DeletePlan)
		}

		admin := v1.Group("/admin", AuthMiddleware(auth), RequireUserType(domain.UserTypeAdmin))
		{
			admin.POST("/coaches", handler.RegisterCoach)
			admin.GET("/coaches", handler.ListCoaches)
			admin.GET("/coaches/:id", handler.GetCoach)
			admin.PUT("/coaches/:id", handler.UpdateCoach)
			admin.DELETE("/coaches/:id", handler.DeleteCoach)
			admin.POST("/coaches/:id/reset-password", handler.ResetCoachPassword)
		}
	}

	return router
}
