package handler

import (
	"errors"
	"net/http"

	"account-auth-service/internal/auth"
	"account-auth-service/internal/auth/credentials"
	"account-auth-service/internal/logger"
	"account-auth-service/internal/response"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	RoleID   int    `json:"role_id" binding:"required,min=1,max=10"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,e164"`
	Password string `json:"password" binding:"required,min=6,max=50"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Validation failed", validationErrors(err)...)
		return
	}

	pub, token, err := h.service.Register(c.Request.Context(), auth.RegisterInput{
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		RoleID:   req.RoleID,
	})

	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			response.Fail(c, http.StatusConflict, "Email already exists")
		case errors.Is(err, auth.ErrPhoneTaken):
			response.Fail(c, http.StatusConflict, "Phone number already exists")
		case errors.Is(err, credentials.ErrPasswordTooShort):
			response.Fail(c, http.StatusBadRequest, "Password too short")
		default:
			logger.Error("registration failed", map[string]any{
				"error": err.Error(),
			})
			response.Fail(c, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	response.OKWithToken(c, http.StatusCreated, "Account created successfully", pub, token)
}
