package api

import (
	"net/http"
	"time"

	authdelivery "watchlog-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	// General API limiter plus stricter limits on the credential
	// endpoints (brute force / account spam)
	apiLimiter := NewFixedWindowLimiter(15*time.Minute, 100)
	loginLimiter := NewFixedWindowLimiter(15*time.Minute, 10)
	registerLimiter := NewFixedWindowLimiter(time.Hour, 3)

	// Health check (no auth required)
	r.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/register",
		RateLimit(registerLimiter, "Too many accounts created. Please try again later."),
		h.authHandler.Register)
	r.POST("/login",
		RateLimit(loginLimiter, "Too many login attempts. Please try again later."),
		h.authHandler.Login)
	r.POST("/logout", h.authHandler.Logout)

	api := r.Group("/api")
	api.Use(
		RateLimit(apiLimiter, "Too many requests from this IP, please try again later."),
		authdelivery.AuthMiddleware(h.codec, h.config.IsProduction()),
	)
	{
		// Account routes
		api.GET("/account", h.authHandler.GetAccount)
		api.PUT("/account", h.authHandler.UpdateAccount)
		api.DELETE("/account", h.authHandler.DeleteAccount)

		// Review routes
		reviews := api.Group("/reviews")
		{
			reviews.GET("", h.reviewHandler.GetAll)
			reviews.POST("", h.reviewHandler.Create)
			reviews.GET("/latest", h.reviewHandler.GetLatest)
			reviews.GET("/grouped-by-ratings", h.reviewHandler.GetGroupedByRatings)
			reviews.GET("/grouped-by-ratings/:rating", h.reviewHandler.GetGroupedByRatings)
			reviews.GET("/:id", h.reviewHandler.GetByID)
			reviews.PUT("/:id", h.reviewHandler.Update)
			reviews.DELETE("/:id", h.reviewHandler.Delete)
		}

		api.GET("/recommendation", h.recHandler.GetRecommendation)
	}
}
