package test

import (
	"context"

	"github.com/sgould/authcore/internal/interfaces"
	"github.com/sgould/authcore/internal/model"
)

// FaultStore wraps an AccountStore and fails selected operations with
// injected errors, for exercising service error paths that a healthy store
// never produces.
type FaultStore struct {
	interfaces.AccountStore

	InsertErr error
	FindErr   error
	UpdateErr error
}

var _ interfaces.AccountStore = (*FaultStore)(nil)

func (s *FaultStore) Insert(ctx context.Context, email, passwordHash string) (*model.Account, error) {
	if s.InsertErr != nil {
		return nil, s.InsertErr
	}
	return s.AccountStore.Insert(ctx, email, passwordHash)
}

func (s *FaultStore) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	if s.FindErr != nil {
		return nil, s.FindErr
	}
	return s.AccountStore.FindByEmail(ctx, email)
}

func (s *FaultStore) FindByID(ctx context.Context, id string) (*model.Account, error) {
	if s.FindErr != nil {
		return nil, s.FindErr
	}
	return s.AccountStore.FindByID(ctx, id)
}

func (s *FaultStore) UpdateAttempts(ctx context.Context, id string, failedAttempts int, locked bool) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	return s.AccountStore.UpdateAttempts(ctx, id, failedAttempts, locked)
}

func (s *FaultStore) ResetAttempts(ctx context.Context, id string) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	return s.AccountStore.ResetAttempts(ctx, id)
}
