package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound reports that no entry exists for the key. The validation
// gate treats it as a denial; any other error is an infrastructure
// failure and the gate fails closed.
var ErrNotFound = errors.New("session not found")

// Store records the single token currently considered valid per account.
// Set is an unconditional overwrite: writing a new token for a key
// supersedes the previous one, which is how the server revokes a token
// before its cryptographic expiry. Last-writer-wins, no locking needed.
type Store interface {
	Set(ctx context.Context, key, token string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
