package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sgould/authcore/internal/interfaces"
	"github.com/sgould/authcore/internal/model"
	"github.com/sgould/authcore/internal/password"
	"github.com/sgould/authcore/internal/repository"
	"github.com/sgould/authcore/internal/token"
)

// AuthService orchestrates the credential store, password hasher, and token
// codec for the register/login/logout/current-user operations.
type AuthService struct {
	store    interfaces.AccountStore
	hasher   password.Hasher
	codec    *token.Codec
	tokenTTL time.Duration
}

// NewAuthService creates an authentication service. tokenTTL bounds the
// lifetime of every issued session token.
func NewAuthService(store interfaces.AccountStore, hasher password.Hasher, codec *token.Codec, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		store:    store,
		hasher:   hasher,
		codec:    codec,
		tokenTTL: tokenTTL,
	}
}

// TokenTTL reports the configured session token lifetime.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// Register creates an account for a new email and signs the caller in,
// returning the public view and a fresh session token.
func (s *AuthService) Register(ctx context.Context, email, plaintext string) (*model.PublicAccount, string, error) {
	if err := validateCredentials(email, plaintext); err != nil {
		return nil, "", err
	}

	digest, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, "", err
	}

	acct, err := s.store.Insert(ctx, email, digest)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			return nil, "", ErrDuplicateAccount
		}
		return nil, "", err
	}

	tok, err := s.codec.Issue(acct.ID, acct.Email, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}

	return acct.Public(), tok, nil
}

// Login verifies the password and returns the public view plus a fresh
// session token. A wrong password advances the lockout state; a locked
// account is rejected before the password is evaluated.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (*model.PublicAccount, string, error) {
	if err := validateCredentials(email, plaintext); err != nil {
		return nil, "", err
	}

	acct, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if acct.Locked {
		return nil, "", ErrAccountLocked
	}

	ok, err := s.hasher.Verify(plaintext, acct.PasswordHash)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		attempts, locked := NextAttemptState(acct.FailedAttempts)
		if err := s.store.UpdateAttempts(ctx, acct.ID, attempts, locked); err != nil {
			return nil, "", err
		}
		return nil, "", &InvalidPasswordError{Attempt: attempts, Max: LockThreshold}
	}

	if err := s.store.ResetAttempts(ctx, acct.ID); err != nil {
		return nil, "", err
	}
	acct.FailedAttempts = 0
	acct.Locked = false

	tok, err := s.codec.Issue(acct.ID, acct.Email, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}

	return acct.Public(), tok, nil
}

// Logout signals the caller to discard its held token. Tokens are
// self-contained, so there is nothing to revoke server-side; an issued token
// stays cryptographically valid until its expiry.
func (s *AuthService) Logout() bool {
	return true
}

// ResolveCurrentUser resolves a session token to the account it asserts.
// A missing, malformed, or expired token, an unknown subject, and a locked
// account all resolve to (nil, nil): not authenticated, not an error.
func (s *AuthService) ResolveCurrentUser(ctx context.Context, tokenString string) (*model.PublicAccount, error) {
	if tokenString == "" {
		return nil, nil
	}

	claims, err := s.codec.Verify(tokenString)
	if err != nil {
		return nil, nil
	}

	acct, err := s.store.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if acct.Locked {
		return nil, nil
	}

	return acct.Public(), nil
}

// ResetLockout clears an account's attempt counter and lock flag. This is an
// administrative operation; it is deliberately not part of the public
// request surface, since locked accounts never unlock on their own.
func (s *AuthService) ResetLockout(ctx context.Context, email string) error {
	acct, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.store.ResetAttempts(ctx, acct.ID)
}

func validateCredentials(email, plaintext string) error {
	if email == "" {
		return &ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if !strings.Contains(email, "@") {
		return &ValidationError{Field: "email", Reason: "must be an email address"}
	}
	if plaintext == "" {
		return &ValidationError{Field: "password", Reason: "must not be empty"}
	}
	return nil
}
