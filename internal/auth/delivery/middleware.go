package delivery

import (
	"errors"
	"net/http"
	"strings"

	"watchlog-backend/internal/auth/token"

	"github.com/gin-gonic/gin"
)

const (
	// AccessTokenCookie carries the session token for web clients.
	AccessTokenCookie = "access-token"
	// NewTokenHeader exposes a silently refreshed token to header-based
	// clients.
	NewTokenHeader = "X-New-Token"
	// ContextUserIDKey is where the verified user id lands in the gin
	// context.
	ContextUserIDKey = "userID"
)

// AuthMiddleware authenticates every protected request and maintains the
// sliding session. Tokens are accepted from the access-token cookie or,
// if absent, from an Authorization Bearer header; the cookie wins when
// both are present.
func AuthMiddleware(codec *token.Codec, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken, _ := c.Cookie(AccessTokenCookie)

		// If no cookie, check Authorization header for Bearer token
		if accessToken == "" {
			if authHeader := c.GetHeader("Authorization"); authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && parts[0] == "Bearer" {
					accessToken = parts[1]
				}
			}
		}

		if accessToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token is missing"})
			return
		}

		claims, err := codec.Verify(accessToken)
		if err != nil {
			if errors.Is(err, token.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired. Please login again."})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token. Please login again."})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)

		// Sliding session: reissue the token once it is closer to expiry
		// than the refresh threshold. Refresh is silent; a failed reissue
		// never fails the request.
		if codec.NeedsRefresh(claims) {
			if fresh, err := codec.Issue(claims.UserID, claims.Email); err == nil {
				SetAccessTokenCookie(c, fresh, codec.CookieMaxAge(), secureCookie)
				c.Header(NewTokenHeader, fresh)
			}
		}

		c.Next()
	}
}

// SetAccessTokenCookie writes the session cookie the way every issuing
// path does: HttpOnly, Lax for CSRF protection, Secure only in
// production. Header-based clients get the token from the response body
// or the refresh header, so nothing reads this cookie from JS.
func SetAccessTokenCookie(c *gin.Context, tok string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessTokenCookie, tok, maxAge, "/", "", secure, true)
}

// ClearAccessTokenCookie expires the session cookie.
func ClearAccessTokenCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessTokenCookie, "", -1, "/", "", secure, true)
}
