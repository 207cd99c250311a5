package handler

import (
	"errors"
	"net/http"

	"account-auth-service/internal/auth"
	"account-auth-service/internal/logger"
	"account-auth-service/internal/response"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=50"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Validation failed", validationErrors(err)...)
		return
	}

	pub, token, err := h.service.Login(c.Request.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})

	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logger.Error("login failed", map[string]any{
			"error": err.Error(),
		})
		response.Fail(c, http.StatusInternalServerError, "Login failed")
		return
	}

	response.OKWithToken(c, http.StatusOK, "Login successful", pub, token)
}
