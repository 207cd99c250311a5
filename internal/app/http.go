package app

import (
	"context"
	"time"

	"account-auth-service/internal/account"
	"account-auth-service/internal/auth"
	"account-auth-service/internal/auth/credentials"
	"account-auth-service/internal/auth/handler"
	"account-auth-service/internal/auth/token"
	"account-auth-service/internal/config"
	"account-auth-service/internal/db"
	"account-auth-service/internal/middleware"
	"account-auth-service/internal/session"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	hasher := credentials.NewHasher(cfg.BcryptCost)
	issuer := token.NewIssuer(
		cfg.JWTSecret,
		time.Duration(cfg.JWTLifetimeHours)*time.Hour,
	)

	authService := auth.NewService(
		infra.DB,
		func(q db.Querier) account.Store { return account.NewPostgresStore(q) },
		hasher,
		issuer,
		sessionStore,
		time.Duration(cfg.SessionTTLSeconds)*time.Second,
	)

	authHandler := handler.NewHandler(authService)
	authMiddleware := middleware.NewAuthMiddleware(issuer, sessionStore)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	authHandler.RegisterRoutes(router, authMiddleware.RequireAuth())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		if err := infra.Redis.Close(); err != nil {
			return err
		}
		return infra.DB.Close()
	}, nil
}
