package handler

import (
	"net/http"

	"account-auth-service/internal/middleware"
	"account-auth-service/internal/response"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Me(c *gin.Context) {
	claims, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Fail(c, http.StatusForbidden, "Access denied. Invalid token.")
		return
	}

	response.OK(c, http.StatusOK, "OK", gin.H{
		"id":    claims.AccountID,
		"email": claims.Email,
		"uuid":  claims.UUID,
	})
}
