package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sgould/authcore/internal/interfaces"
	"github.com/sgould/authcore/internal/model"
)

// MemoryStore is an in-process AccountStore. It backs tests and
// single-instance deployments that run without a database.
type MemoryStore struct {
	mu      sync.Mutex
	byEmail map[string]*model.Account
	byID    map[string]*model.Account
}

var _ interfaces.AccountStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory account store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byEmail: make(map[string]*model.Account),
		byID:    make(map[string]*model.Account),
	}
}

// Insert creates a new account. The duplicate check and the insert happen
// under one lock, so concurrent registrations of the same email cannot both
// succeed.
func (s *MemoryStore) Insert(ctx context.Context, email, passwordHash string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return nil, ErrDuplicateAccount
	}

	acct := &model.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		Created:      time.Now(),
	}
	s.byEmail[email] = acct
	s.byID[acct.ID] = acct
	return copyAccount(acct), nil
}

// FindByEmail retrieves an account by email.
func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, exists := s.byEmail[email]
	if !exists {
		return nil, ErrAccountNotFound
	}
	return copyAccount(acct), nil
}

// FindByID retrieves an account by identifier.
func (s *MemoryStore) FindByID(ctx context.Context, id string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, exists := s.byID[id]
	if !exists {
		return nil, ErrAccountNotFound
	}
	return copyAccount(acct), nil
}

// UpdateAttempts sets the attempt counter and lock flag together.
func (s *MemoryStore) UpdateAttempts(ctx context.Context, id string, failedAttempts int, locked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, exists := s.byID[id]
	if !exists {
		return ErrAccountNotFound
	}
	acct.FailedAttempts = failedAttempts
	acct.Locked = locked
	return nil
}

// ResetAttempts clears the attempt counter and unlocks the account.
func (s *MemoryStore) ResetAttempts(ctx context.Context, id string) error {
	return s.UpdateAttempts(ctx, id, 0, false)
}

// Len reports the number of stored accounts.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byEmail)
}

// Delete removes an account. Not part of the AccountStore contract; it
// exists so tests can model a token whose subject no longer exists.
func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if acct, exists := s.byID[id]; exists {
		delete(s.byEmail, acct.Email)
		delete(s.byID, id)
	}
}

func copyAccount(acct *model.Account) *model.Account {
	c := *acct
	return &c
}
