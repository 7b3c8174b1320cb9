package model

import "time"

// Account is the persisted credential record for one registered email.
type Account struct {
	ID             string
	Email          string
	PasswordHash   string
	FailedAttempts int
	Locked         bool
	Created        time.Time
}

// PublicAccount is the subset of Account that is safe to return to callers.
// It never carries the password hash.
type PublicAccount struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FailedAttempts int    `json:"failedAttempts"`
	Locked         bool   `json:"locked"`
}

// Public returns the caller-facing view of the account.
func (a *Account) Public() *PublicAccount {
	return &PublicAccount{
		ID:             a.ID,
		Email:          a.Email,
		FailedAttempts: a.FailedAttempts,
		Locked:         a.Locked,
	}
}
