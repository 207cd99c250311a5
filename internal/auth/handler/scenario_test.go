package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"account-auth-service/internal/account"
	"account-auth-service/internal/auth"
	"account-auth-service/internal/auth/credentials"
	"account-auth-service/internal/auth/token"
	"account-auth-service/internal/db"
	"account-auth-service/internal/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memAccountStore struct {
	accounts []*account.Account
	nextID   int64
}

func (m *memAccountStore) Create(ctx context.Context, a *account.Account) (*account.Account, error) {
	m.nextID++
	a.ID = m.nextID
	a.UUID = fmt.Sprintf("uuid-%d", m.nextID)
	a.CreatedAt = time.Now()
	m.accounts = append(m.accounts, a)
	return a, nil
}

func (m *memAccountStore) Update(ctx context.Context, uuid string, upd account.Update) error {
	return nil
}

func (m *memAccountStore) SoftDelete(ctx context.Context, uuid string) error {
	return nil
}

func (m *memAccountStore) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, account.ErrNotFound
}

func (m *memAccountStore) FindByPhone(ctx context.Context, phone string) (*account.Account, error) {
	for _, a := range m.accounts {
		if a.Phone == phone {
			return a, nil
		}
	}
	return nil, account.ErrNotFound
}

// Full path through handlers, service, token issuer, session store and
// validation gate: register, log in again, and confirm only the freshest
// token passes the gate.
func TestRegisterLoginValidateScenario(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	mock.MatchExpectationsInOrder(false)
	mock.ExpectBegin()
	mock.ExpectCommit()

	store := &memAccountStore{}
	sessions := &memSessionStore{entries: map[string]string{}}
	issuer := token.NewIssuer("scenario-secret", time.Hour)

	svc := auth.NewService(
		&db.DB{DB: mockDB},
		func(q db.Querier) account.Store { return store },
		credentials.NewHasher(bcrypt.MinCost),
		issuer,
		sessions,
		time.Hour,
	)

	r := gin.New()
	gate := middleware.NewAuthMiddleware(issuer, sessions).RequireAuth()
	NewHandler(svc).RegisterRoutes(r, gate)

	// register → 201 with token T1
	w := postJSON(r, "/auth/register", gin.H{
		"role_id":  1,
		"email":    "a@x.com",
		"phone":    "+15551234567",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", data["email"])

	t1 := env.Token
	require.NotEmpty(t, t1)

	// login → 200 with a different token T2
	w = postJSON(r, "/auth/login", gin.H{"email": "a@x.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)

	t2 := decodeEnvelope(t, w).Token
	require.NotEmpty(t, t2)
	require.NotEqual(t, t1, t2)

	validate := func(tok string) int {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	// T1 was superseded by the login; only T2 passes the gate
	assert.Equal(t, http.StatusForbidden, validate(t1))
	assert.Equal(t, http.StatusOK, validate(t2))

	// identity from T2 matches the registered account
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+t2)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	me, ok := decodeEnvelope(t, rec).Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "uuid-1", me["uuid"])
}
