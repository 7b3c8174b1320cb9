package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/sgould/authcore/internal/database"
	"github.com/sgould/authcore/internal/interfaces"
	"github.com/sgould/authcore/internal/model"
)

// Common errors that can be returned by a store.
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrDuplicateAccount = errors.New("email already registered")
)

// AccountRepository is the PostgreSQL-backed AccountStore.
type AccountRepository struct {
	db *database.DB
}

var _ interfaces.AccountStore = (*AccountRepository)(nil)

// NewAccountRepository creates an AccountStore backed by the given database.
func NewAccountRepository(db *database.DB) interfaces.AccountStore {
	return &AccountRepository{db: db}
}

// Insert creates a new account with a zeroed attempt counter. The unique
// index on email makes the duplicate check atomic with the insert, so a
// registration race cannot produce two accounts for one email.
func (r *AccountRepository) Insert(ctx context.Context, email, passwordHash string) (*model.Account, error) {
	var acct model.Account
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO accounts (email, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, email, password_hash, failed_attempts, locked, created_at`,
		email, passwordHash).Scan(
		&acct.ID, &acct.Email, &acct.PasswordHash,
		&acct.FailedAttempts, &acct.Locked, &acct.Created)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateAccount
		}
		return nil, err
	}

	return &acct, nil
}

// FindByEmail retrieves an account by its email address.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	return r.findBy(ctx, "email", email)
}

// FindByID retrieves an account by its identifier.
func (r *AccountRepository) FindByID(ctx context.Context, id string) (*model.Account, error) {
	return r.findBy(ctx, "id", id)
}

func (r *AccountRepository) findBy(ctx context.Context, column, value string) (*model.Account, error) {
	var acct model.Account
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, email, password_hash, failed_attempts, locked, created_at
		 FROM accounts
		 WHERE `+column+` = $1`,
		value).Scan(
		&acct.ID, &acct.Email, &acct.PasswordHash,
		&acct.FailedAttempts, &acct.Locked, &acct.Created)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	return &acct, nil
}

// UpdateAttempts writes the attempt counter and lock flag together in one
// statement, so the pair is never observed half-applied.
func (r *AccountRepository) UpdateAttempts(ctx context.Context, id string, failedAttempts int, locked bool) error {
	tag, err := r.db.Pool.Exec(ctx,
		`UPDATE accounts
		 SET failed_attempts = $2,
		     locked = $3
		 WHERE id = $1`,
		id, failedAttempts, locked)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// ResetAttempts clears the attempt counter and unlocks the account.
func (r *AccountRepository) ResetAttempts(ctx context.Context, id string) error {
	return r.UpdateAttempts(ctx, id, 0, false)
}
