package api

import (
	"net/http"

	authdelivery "watchlog-backend/internal/auth/delivery"
	"watchlog-backend/internal/auth/token"
	authusecase "watchlog-backend/internal/auth/usecase"
	imageusecase "watchlog-backend/internal/image/usecase"
	recdelivery "watchlog-backend/internal/recommendation/delivery"
	reviewdelivery "watchlog-backend/internal/review/delivery"
	reviewusecase "watchlog-backend/internal/review/usecase"
	"watchlog-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authHandler   *authdelivery.AuthHandler
	reviewHandler *reviewdelivery.ReviewHandler
	recHandler    *recdelivery.RecommendationHandler
	codec         *token.Codec
	config        *config.Config
}

func NewHandler(authUc authusecase.AuthUsecase, reviewUc reviewusecase.ReviewUsecase, imageUc imageusecase.ImageUsecase, codec *token.Codec, cfg *config.Config) (*Handler, error) {
	recHandler, err := recdelivery.NewRecommendationHandler(imageUc)
	if err != nil {
		return nil, err
	}

	return &Handler{
		authHandler:   authdelivery.NewAuthHandler(authUc, codec, cfg.IsProduction()),
		reviewHandler: reviewdelivery.NewReviewHandler(reviewUc),
		recHandler:    recHandler,
		codec:         codec,
		config:        cfg,
	}, nil
}

func (h *Handler) Start(addr string) error {
	if h.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
			c.Header("Access-Control-Expose-Headers", authdelivery.NewTokenHeader)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.Use(ErrorHandler(h.config.IsProduction()))

	SetupRoutes(r, h)

	return r.Run(addr)
}
