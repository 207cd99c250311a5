package middleware

import (
	"errors"
	"net/http"
	"strings"

	"account-auth-service/internal/auth/token"
	"account-auth-service/internal/logger"
	"account-auth-service/internal/response"
	"account-auth-service/internal/session"

	"github.com/gin-gonic/gin"
)

const identityKey = "authIdentity"

// IdentityFromContext extracts the authenticated identity attached by
// RequireAuth.
func IdentityFromContext(c *gin.Context) (*token.Claims, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*token.Claims)
	return claims, ok
}

type AuthMiddleware struct {
	issuer   *token.Issuer
	sessions session.Store
}

func NewAuthMiddleware(issuer *token.Issuer, sessions session.Store) *AuthMiddleware {
	return &AuthMiddleware{issuer: issuer, sessions: sessions}
}

// RequireAuth guards protected routes. A request passes only if the
// token's signature and expiry verify AND the token is byte-equal to the
// entry in the session store — the second check is what makes forced
// logout and single-active-session enforceable server-side.
func (a *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {

		// 1. Extract bearer token
		presented := extractToken(c.Request)
		if presented == "" {
			response.Fail(c, http.StatusForbidden, "Access denied. No token provided")
			c.Abort()
			return
		}

		// 2. Signature and expiry
		claims, err := a.issuer.Verify(presented)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "Invalid token")
			c.Abort()
			return
		}

		// 3. Session store comparison
		key := session.Key(claims.Email, claims.UUID)
		stored, err := a.sessions.Get(c.Request.Context(), key)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				// Store unreachable: fail closed rather than accept a
				// token whose session state cannot be confirmed.
				logger.Error("session store lookup failed", map[string]any{
					"error": err.Error(),
				})
			}
			response.Fail(c, http.StatusForbidden, "Access denied. Invalid token.")
			c.Abort()
			return
		}

		if stored != presented {
			response.Fail(c, http.StatusForbidden, "Access denied. Invalid token.")
			c.Abort()
			return
		}

		// 4. Attach identity and continue
		c.Set(identityKey, claims)
		c.Next()
	}
}

func extractToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}
