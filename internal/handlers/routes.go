package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"send-email-api/internal/middleware"
	"send-email-api/internal/services"
)

// SendEmailPath is the route of the endpoint on the local server
const SendEmailPath = "/send-email"

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	Sender         services.EmailSender
	RateLimitRPS   float64
	RateLimitBurst int
	MaxBodyBytes   int64
	Mode           string
}

// SetupRoutes configures the local server routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	emailHandler := NewEmailHandler(config.Sender)

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.StructuredLogger())
	router.Use(middleware.PerformanceMonitor(time.Second))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "send-email-api",
			"mode":    config.Mode,
		})
	})

	email := router.Group(SendEmailPath)
	email.Use(middleware.RateLimiter(config.RateLimitRPS, config.RateLimitBurst))
	email.Use(middleware.RequestSizeLimit(config.MaxBodyBytes))
	{
		email.POST("", emailHandler.SendEmail)
		// Preflight is answered by the CORS middleware; the route only has
		// to exist so the engine does not return 404
		email.OPTIONS("", func(c *gin.Context) {})
	}
}
