package handler

import (
	"net/http"

	"account-auth-service/internal/logger"
	"account-auth-service/internal/middleware"
	"account-auth-service/internal/response"

	"github.com/gin-gonic/gin"
)

// Logout revokes the caller's session entry. The token itself stays
// cryptographically valid until expiry but no longer passes the gate.
func (h *Handler) Logout(c *gin.Context) {
	claims, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Fail(c, http.StatusForbidden, "Access denied. Invalid token.")
		return
	}

	if err := h.service.Logout(c.Request.Context(), claims.Email, claims.UUID); err != nil {
		logger.Error("logout failed", map[string]any{
			"error": err.Error(),
		})
		response.Fail(c, http.StatusInternalServerError, "Logout failed")
		return
	}

	c.Status(http.StatusNoContent)
}
