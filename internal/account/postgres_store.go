package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"account-auth-service/internal/db"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type PostgresStore struct {
	q db.Querier
}

// NewPostgresStore binds a store to q, which may be the pooled *sql.DB or
// a transaction handle from db.WithTx.
func NewPostgresStore(q db.Querier) *PostgresStore {
	return &PostgresStore{q: q}
}

func (s *PostgresStore) Create(ctx context.Context, a *Account) (*Account, error) {

	query := `
		INSERT INTO accounts (email, phone, hashed_password, role_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, uuid, created_at
	`

	err := s.q.QueryRowContext(ctx, query,
		a.Email, a.Phone, a.HashedPassword, a.RoleID,
	).Scan(&a.ID, &a.UUID, &a.CreatedAt)

	if err != nil {
		return nil, mapUniqueViolation(err)
	}

	return a, nil
}

func (s *PostgresStore) Update(ctx context.Context, uuid string, upd Update) error {

	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.Phone != nil {
		add("phone", *upd.Phone)
	}
	if upd.HashedPassword != nil {
		add("hashed_password", *upd.HashedPassword)
	}
	if upd.RoleID != nil {
		add("role_id", *upd.RoleID)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, uuid)
	query := fmt.Sprintf(
		"UPDATE accounts SET %s WHERE uuid = $%d AND deleted_at IS NULL",
		strings.Join(sets, ", "), len(args),
	)

	res, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return mapUniqueViolation(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *PostgresStore) SoftDelete(ctx context.Context, uuid string) error {

	query := `
		UPDATE accounts SET deleted_at = NOW()
		WHERE uuid = $1 AND deleted_at IS NULL
	`

	res, err := s.q.ExecContext(ctx, query, uuid)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// FindByEmail returns the most recent account for the address, including
// tombstoned rows: the caller decides how a soft-deleted account is
// treated (login rejects it, registration ignores it).
func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*Account, error) {
	return s.findBy(ctx, "LOWER(email) = LOWER($1)", email)
}

func (s *PostgresStore) FindByPhone(ctx context.Context, phone string) (*Account, error) {
	return s.findBy(ctx, "phone = $1", phone)
}

func (s *PostgresStore) findBy(ctx context.Context, where string, arg any) (*Account, error) {

	query := `
		SELECT id, uuid, email, phone, hashed_password, role_id, created_at, deleted_at
		FROM accounts
		WHERE ` + where + `
		ORDER BY created_at DESC
		LIMIT 1
	`

	a := &Account{}
	err := s.q.QueryRowContext(ctx, query, arg).Scan(
		&a.ID, &a.UUID, &a.Email, &a.Phone,
		&a.HashedPassword, &a.RoleID, &a.CreatedAt, &a.DeletedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("account query failed: %w", err)
	}

	return a, nil
}

// mapUniqueViolation translates the schema-level uniqueness backstop into
// the store's conflict sentinels so a racing insert surfaces the same way
// as the fast-path existence check.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		switch pqErr.Constraint {
		case "accounts_email_unique":
			return ErrDuplicateEmail
		case "accounts_phone_unique":
			return ErrDuplicatePhone
		}
	}
	return err
}
