package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired means the signature checked out but the token is past
	// its expiry. Clients should log in again.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid covers malformed tokens and bad signatures.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims is the verified identity carried by a session token.
type Claims struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// Codec issues and verifies stateless session tokens. Validity is purely
// cryptographic; nothing is stored server-side.
type Codec struct {
	secret           []byte
	expiry           time.Duration
	refreshThreshold time.Duration
}

func NewCodec(secret string, expiry, refreshThreshold time.Duration) *Codec {
	return &Codec{
		secret:           []byte(secret),
		expiry:           expiry,
		refreshThreshold: refreshThreshold,
	}
}

// Issue signs a new token for the given user with the full validity window.
func (c *Codec) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"exp":   now.Add(c.expiry).Unix(),
		"iat":   now.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.secret)
}

// Verify checks signature and expiry. Expired and invalid tokens are
// distinguished so clients can tell "re-login" from "malformed credential".
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, ErrTokenInvalid
	}

	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return nil, ErrTokenInvalid
	}
	email, _ := claims["email"].(string)

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrTokenInvalid
	}

	return &Claims{
		UserID:    userID,
		Email:     email,
		ExpiresAt: exp.Time,
	}, nil
}

// NeedsRefresh reports whether the remaining validity has dropped below the
// sliding-session threshold.
func (c *Codec) NeedsRefresh(claims *Claims) bool {
	return time.Until(claims.ExpiresAt) < c.refreshThreshold
}

// CookieMaxAge is the cookie lifetime matching a freshly issued token.
func (c *Codec) CookieMaxAge() int {
	return int(c.expiry.Seconds())
}
