package app

import (
	"github.com/Dhanushraagav/ai-interview-platform/docs"
	"github.com/Dhanushraagav/ai-interview-platform/internal/config"
	"github.com/Dhanushraagav/ai-interview-platform/internal/middleware"
	"github.com/Dhanushraagav/ai-interview-platform/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authorized := router.Group("/api")
	authorized.Use(middleware.AuthMiddleware(cfg))
	{
		authorized.GET("/profile", c.auth.GetProfile)
		authorized.GET("/topics", c.interview.GetTopics)

		authorized.POST("/interviews", c.interview.StartInterview)
		authorized.GET("/interviews", c.interview.ListSessions)
		authorized.POST("/interviews/:id/answers", c.interview.SubmitAnswer)
		authorized.GET("/interviews/:id/status", c.interview.GetStatus)
		authorized.GET("/interviews/:id/report", c.interview.GetReport)
		authorized.DELETE("/interviews/:id", c.interview.DeleteSession)
	}
}
