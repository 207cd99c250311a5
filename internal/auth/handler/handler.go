package handler

import (
	"context"
	"errors"

	"account-auth-service/internal/account"
	"account-auth-service/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Service is the slice of the authentication service the handlers need.
type Service interface {
	Register(ctx context.Context, in auth.RegisterInput) (account.PublicAccount, string, error)
	Login(ctx context.Context, in auth.LoginInput) (account.PublicAccount, string, error)
	Logout(ctx context.Context, email, uuid string) error
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	grp := r.Group("/auth")

	grp.POST("/register", h.Register)
	grp.POST("/login", h.Login)

	grp.POST("/logout", requireAuth, h.Logout)
	grp.GET("/me", requireAuth, h.Me)
}

// validationErrors flattens a binding failure into per-field messages for
// the response envelope.
func validationErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Field()+" failed on "+fe.Tag())
	}
	return out
}
