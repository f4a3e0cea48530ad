package usecase

import (
	authdomain "watchlog-backend/internal/auth/domain"
	authdto "watchlog-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication and account
// business logic
type AuthUsecase interface {
	// Register validates and creates a new user
	Register(req *authdto.RegisterRequest) (*authdomain.User, error)

	// Login checks credentials and returns the matching user
	Login(req *authdto.LoginRequest) (*authdomain.User, error)

	// GetAccount returns the profile of the given user
	GetAccount(userID string) (*authdomain.User, error)

	// UpdateAccount updates the profile fields of the given user
	UpdateAccount(userID string, req *authdto.UpdateAccountRequest) (*authdomain.User, error)

	// DeleteAccount deletes the user and everything they own
	DeleteAccount(userID string) error

	// SetReviewPurge wires the callback that removes a user's reviews
	// when the account is deleted
	SetReviewPurge(purge func(userID string) error)
}
