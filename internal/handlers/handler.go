package handlers

import (
	"devconnect/internal/logger"
	"devconnect/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services    *service.Service
	log         *logger.Logger
	authLimiter *ipRateLimiter
}

// NewHandler constructs a new HTTP handler with dependencies. authRPM bounds
// registration/login attempts per client IP per minute.
func NewHandler(services *service.Service, log *logger.Logger, authRPM int) *Handler {
	return &Handler{
		services:    services,
		log:         log,
		authLimiter: newIPRateLimiter(authRPM),
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	api := router.Group("/api")
	{
		h.registerUserRoutes(api)
		h.registerAuthRoutes(api)
		h.registerProfileRoutes(api)
	}

	// Live profile directory feed (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	api.POST("/users", h.authLimiter.middleware, h.register)
}

func (h *Handler) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("", h.authLimiter.middleware, h.login)
		auth.GET("", h.authMiddleware, h.currentUser)
	}
}

func (h *Handler) registerProfileRoutes(api *gin.RouterGroup) {
	profile := api.Group("/profile")
	{
		// Public directory reads
		profile.GET("", h.listProfiles)
		profile.GET("/user/:user_id", h.profileByUserID)
		profile.GET("/github/:username", h.githubRepos)

		// Token-gated operations
		profile.GET("/me", h.authMiddleware, h.myProfile)
		profile.POST("", h.authMiddleware, h.saveProfile)
		profile.DELETE("", h.authMiddleware, h.deleteAccount)
		profile.PUT("/experience", h.authMiddleware, h.addExperience)
		profile.DELETE("/experience/:exp_id", h.authMiddleware, h.removeExperience)
	}
}
