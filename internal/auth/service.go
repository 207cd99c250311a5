package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"account-auth-service/internal/account"
	"account-auth-service/internal/auth/credentials"
	"account-auth-service/internal/auth/token"
	"account-auth-service/internal/db"
	"account-auth-service/internal/session"
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrPhoneTaken         = errors.New("phone number already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type RegisterInput struct {
	Email    string
	Phone    string
	Password string
	RoleID   int
}

type LoginInput struct {
	Email    string
	Password string
}

// StoreFactory binds an account store to a query handle, letting the
// register flow run its reads and the insert against one transaction.
type StoreFactory func(q db.Querier) account.Store

type Service struct {
	db         *db.DB
	stores     StoreFactory
	hasher     *credentials.Hasher
	issuer     *token.Issuer
	sessions   session.Store
	sessionTTL time.Duration
}

func NewService(
	database *db.DB,
	stores StoreFactory,
	hasher *credentials.Hasher,
	issuer *token.Issuer,
	sessions session.Store,
	sessionTTL time.Duration,
) *Service {
	return &Service{
		db:         database,
		stores:     stores,
		hasher:     hasher,
		issuer:     issuer,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Register creates an account and starts its first session. The existence
// checks and the insert run in one transaction; the partial unique
// indexes are the authoritative backstop, so a racing duplicate insert
// surfaces as the same conflict error and the transaction rolls back.
// The session write happens inside the transaction too: if it fails, no
// account is left behind.
func (s *Service) Register(ctx context.Context, in RegisterInput) (account.PublicAccount, string, error) {

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return account.PublicAccount{}, "", err
	}

	var created *account.Account
	var issued string

	err = s.db.WithTx(ctx, func(ctx context.Context, tx db.Querier) error {
		store := s.stores(tx)

		existing, err := store.FindByEmail(ctx, in.Email)
		if err != nil && !errors.Is(err, account.ErrNotFound) {
			return err
		}
		if existing != nil && !existing.Deleted() {
			return ErrEmailTaken
		}

		existing, err = store.FindByPhone(ctx, in.Phone)
		if err != nil && !errors.Is(err, account.ErrNotFound) {
			return err
		}
		if existing != nil && !existing.Deleted() {
			return ErrPhoneTaken
		}

		created, err = store.Create(ctx, &account.Account{
			Email:          in.Email,
			Phone:          in.Phone,
			HashedPassword: hash,
			RoleID:         in.RoleID,
		})
		if err != nil {
			return mapConflict(err)
		}

		issued, err = s.startSession(ctx, created)
		return err
	})

	if err != nil {
		return account.PublicAccount{}, "", err
	}

	return created.Public(), issued, nil
}

// Login verifies credentials and rotates the account's session: the new
// token overwrites the stored entry, which invalidates any previously
// issued token at the validation gate. Absent, soft-deleted and
// wrong-password all collapse into one opaque credential error so a
// caller cannot probe which addresses have accounts.
func (s *Service) Login(ctx context.Context, in LoginInput) (account.PublicAccount, string, error) {

	store := s.stores(s.db)

	acc, err := store.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.PublicAccount{}, "", ErrInvalidCredentials
		}
		return account.PublicAccount{}, "", err
	}

	if acc.Deleted() {
		return account.PublicAccount{}, "", ErrInvalidCredentials
	}

	if err := s.hasher.Verify(acc.HashedPassword, in.Password); err != nil {
		return account.PublicAccount{}, "", ErrInvalidCredentials
	}

	issued, err := s.startSession(ctx, acc)
	if err != nil {
		return account.PublicAccount{}, "", err
	}

	return acc.Public(), issued, nil
}

// Logout drops the session entry so the presented token stops passing
// the gate immediately, regardless of its remaining lifetime.
func (s *Service) Logout(ctx context.Context, email, uuid string) error {
	return s.sessions.Delete(ctx, session.Key(email, uuid))
}

func (s *Service) startSession(ctx context.Context, acc *account.Account) (string, error) {
	issued, err := s.issuer.Issue(acc.ID, acc.Email, acc.UUID)
	if err != nil {
		return "", fmt.Errorf("token issue failed: %w", err)
	}

	key := session.Key(acc.Email, acc.UUID)
	if err := s.sessions.Set(ctx, key, issued, s.sessionTTL); err != nil {
		return "", fmt.Errorf("session write failed: %w", err)
	}

	return issued, nil
}

func mapConflict(err error) error {
	switch {
	case errors.Is(err, account.ErrDuplicateEmail):
		return ErrEmailTaken
	case errors.Is(err, account.ErrDuplicatePhone):
		return ErrPhoneTaken
	}
	return err
}
