package delivery

import (
	"net/http"

	authdto "watchlog-backend/internal/auth/dto"
	"watchlog-backend/internal/auth/token"
	"watchlog-backend/internal/auth/usecase"
	"watchlog-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles auth and account HTTP requests
type AuthHandler struct {
	authUsecase  usecase.AuthUsecase
	codec        *token.Codec
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, codec *token.Codec, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		codec:        codec,
		secureCookie: secureCookie,
	}
}

// Register creates a new user and logs them in
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.Validation("Invalid request body"))
		return
	}

	user, err := h.authUsecase.Register(&req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	accessToken, err := h.codec.Issue(user.ID, user.Email)
	if err != nil {
		_ = c.Error(err)
		return
	}

	SetAccessTokenCookie(c, accessToken, h.codec.CookieMaxAge(), h.secureCookie)
	c.JSON(http.StatusCreated, gin.H{
		"accessToken": accessToken,
		"message":     "User registered",
	})
}

// Login authenticates a user and issues a session token
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.Validation("Invalid request body"))
		return
	}

	user, err := h.authUsecase.Login(&req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	accessToken, err := h.codec.Issue(user.ID, user.Email)
	if err != nil {
		_ = c.Error(err)
		return
	}

	SetAccessTokenCookie(c, accessToken, h.codec.CookieMaxAge(), h.secureCookie)
	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; validity is cryptographic, not stored.
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	ClearAccessTokenCookie(c, h.secureCookie)
	c.JSON(http.StatusOK, "Logged out successfully")
}

// GetAccount returns the authenticated user's profile
// GET /api/account
func (h *AuthHandler) GetAccount(c *gin.Context) {
	userID := c.GetString(ContextUserIDKey)

	user, err := h.authUsecase.GetAccount(userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateAccount updates the authenticated user's profile
// PUT /api/account
func (h *AuthHandler) UpdateAccount(c *gin.Context) {
	userID := c.GetString(ContextUserIDKey)

	var req authdto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.Validation("Invalid request body"))
		return
	}

	user, err := h.authUsecase.UpdateAccount(userID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteAccount deletes the authenticated user and their reviews
// DELETE /api/account
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID := c.GetString(ContextUserIDKey)

	if err := h.authUsecase.DeleteAccount(userID); err != nil {
		_ = c.Error(err)
		return
	}

	ClearAccessTokenCookie(c, h.secureCookie)
	c.JSON(http.StatusOK, true)
}
