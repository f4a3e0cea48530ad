package usecase

import (
	"log"
	"net/mail"
	"strings"

	authdomain "watchlog-backend/internal/auth/domain"
	authdto "watchlog-backend/internal/auth/dto"
	"watchlog-backend/internal/auth/repository"
	"watchlog-backend/pkg/apperror"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo    repository.UserRepository
	reviewPurge func(userID string) error
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
	}
}

func (u *authUsecase) SetReviewPurge(purge func(userID string) error) {
	u.reviewPurge = purge
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, error) {
	email := normalizeEmail(req.Email)
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)

	if req.Password == "" {
		return nil, apperror.Validation("Password can't be empty")
	}
	if len(req.Password) < 6 {
		return nil, apperror.Validation("Password must be at least 6 characters long")
	}
	if email == "" {
		return nil, apperror.Validation("Email can't be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperror.Validation("Please provide a valid email address")
	}
	if firstName == "" {
		return nil, apperror.Validation("First name can't be empty")
	}
	if lastName == "" {
		return nil, apperror.Validation("Last name can't be empty")
	}

	existing, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("This email is already registered")
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdomain.User, error) {
	email := normalizeEmail(req.Email)

	if email == "" {
		return nil, apperror.Validation("Email can't be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperror.Validation("Please provide a valid email address")
	}
	if req.Password == "" {
		return nil, apperror.Validation("Password can't be empty")
	}

	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User does not exist")
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperror.New(apperror.KindUnauthenticated, "Wrong email and password combination")
	}

	return user, nil
}

func (u *authUsecase) GetAccount(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *authUsecase) UpdateAccount(userID string, req *authdto.UpdateAccountRequest) (*authdomain.User, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)

	if firstName == "" {
		return nil, apperror.Validation("First name can't be empty")
	}
	if lastName == "" {
		return nil, apperror.Validation("Last name can't be empty")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	user.FirstName = firstName
	user.LastName = lastName

	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) DeleteAccount(userID string) error {
	if u.reviewPurge != nil {
		if err := u.reviewPurge(userID); err != nil {
			log.Printf("[WARN] Failed to purge reviews for user %s: %v", userID, err)
			return err
		}
	}
	return u.userRepo.Delete(userID)
}

// normalizeEmail trims whitespace and lowercases so lookups are
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
