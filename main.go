package main

import (
	"log"

	api "watchlog-backend/cmd/api"
	authdomain "watchlog-backend/internal/auth/domain"
	authRepo "watchlog-backend/internal/auth/repository"
	"watchlog-backend/internal/auth/token"
	authUsecase "watchlog-backend/internal/auth/usecase"
	imagedomain "watchlog-backend/internal/image/domain"
	imageRepo "watchlog-backend/internal/image/repository"
	imageUsecase "watchlog-backend/internal/image/usecase"
	reviewdomain "watchlog-backend/internal/review/domain"
	reviewRepo "watchlog-backend/internal/review/repository"
	reviewUsecase "watchlog-backend/internal/review/usecase"
	"watchlog-backend/pkg/config"
	"watchlog-backend/pkg/database"
	"watchlog-backend/pkg/omdb"
)

func main() {
	// Load configuration; missing required variables abort startup
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &imagedomain.Image{}, &reviewdomain.Review{}); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	reviewRepository := reviewRepo.NewGormReviewRepository(db)
	imageRepository := imageRepo.NewImageRepository(db)

	// Token codec shared by the session middleware and the login path
	codec := token.NewCodec(cfg.TokenSecret, cfg.TokenExpiry, cfg.TokenRefreshThreshold)

	// Poster fetch collaborator (best-effort enrichment)
	omdbClient := omdb.NewClient(cfg.OMDBAPIKey)

	// Initialize use cases (dependency injection)
	imageUsecaseInstance := imageUsecase.NewImageUsecase(imageRepository, omdbClient)
	reviewUsecaseInstance := reviewUsecase.NewReviewUsecase(reviewRepository, imageUsecaseInstance)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository)

	// Account deletion cascades to the user's reviews
	authUsecaseInstance.SetReviewPurge(reviewUsecaseInstance.DeleteAllForUser)

	// Initialize HTTP handler
	handler, err := api.NewHandler(authUsecaseInstance, reviewUsecaseInstance, imageUsecaseInstance, codec, cfg)
	if err != nil {
		log.Fatal("Failed to initialize handler: ", err)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
