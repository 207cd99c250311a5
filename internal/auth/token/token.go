package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	guuid "github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload carried by an issued token: the account identity
// plus the registered expiration claim. It exists only inside a signed
// token string, never as persisted state.
type Claims struct {
	jwt.RegisteredClaims
	AccountID int64  `json:"id"`
	Email     string `json:"email"`
	UUID      string `json:"uuid"`
}

// Issuer creates and verifies signed, expiring HS256 tokens.
type Issuer struct {
	secret   []byte
	lifetime time.Duration
}

func NewIssuer(secret string, lifetime time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), lifetime: lifetime}
}

// Lifetime is the validity window of issued tokens; the session entry TTL
// is derived from it so both expire together.
func (i *Issuer) Lifetime() time.Duration {
	return i.lifetime
}

func (i *Issuer) Issue(accountID int64, email, uuid string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.lifetime)),
			// Unique per token, so a fresh login always yields a new
			// string and the session-store comparison can tell the old
			// session from the new one.
			ID: guuid.NewString(),
		},
		AccountID: accountID,
		Email:     email,
		UUID:      uuid,
	})

	return t.SignedString(i.secret)
}

// Verify checks the signature and the expiration claim. A valid result is
// necessary but not sufficient for authorization: the session gate still
// compares the token against the session store.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if !t.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
