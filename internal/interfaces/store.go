package interfaces

import (
	"context"

	"github.com/sgould/authcore/internal/model"
)

// AccountStore defines the persistence operations the auth service needs.
// Implementations must make Insert's duplicate check atomic with the insert
// itself, and must apply each attempt-counter update as a single atomic
// operation on the account record.
type AccountStore interface {
	Insert(ctx context.Context, email, passwordHash string) (*model.Account, error)
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
	FindByID(ctx context.Context, id string) (*model.Account, error)
	UpdateAttempts(ctx context.Context, id string, failedAttempts int, locked bool) error
	ResetAttempts(ctx context.Context, id string) error
}
