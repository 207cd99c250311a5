package account

import "time"

type Account struct {
	ID             int64
	UUID           string
	Email          string
	Phone          string
	HashedPassword string
	RoleID         int
	CreatedAt      time.Time
	DeletedAt      *time.Time
}

// PublicAccount is the view returned to clients. The password hash is
// never part of it.
type PublicAccount struct {
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Account) Public() PublicAccount {
	return PublicAccount{
		Email:     a.Email,
		Phone:     a.Phone,
		CreatedAt: a.CreatedAt,
	}
}

func (a *Account) Deleted() bool {
	return a.DeletedAt != nil
}
