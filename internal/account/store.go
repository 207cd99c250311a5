package account

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("account not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicatePhone = errors.New("phone already registered")
)

// Update carries the mutable fields of an account; nil means unchanged.
type Update struct {
	Email          *string
	Phone          *string
	HashedPassword *string
	RoleID         *int
}

// Store is the persistence contract for accounts. A Store instance is
// bound to a db.Querier at construction, so the register flow can run
// every call against one transaction while other callers use the pool.
type Store interface {
	Create(ctx context.Context, a *Account) (*Account, error)
	Update(ctx context.Context, uuid string, upd Update) error
	SoftDelete(ctx context.Context, uuid string) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByPhone(ctx context.Context, phone string) (*Account, error)
}
