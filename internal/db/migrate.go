package db

import (
	"context"

	"account-auth-service/internal/db/migrations"

	"github.com/pressly/goose/v3"
)

func RunMigrations(ctx context.Context, db *DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db.DB, ".")
}
