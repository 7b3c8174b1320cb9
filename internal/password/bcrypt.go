package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrCorruptDigest indicates a stored digest that bcrypt cannot parse.
// A plain mismatch is not an error; Verify reports it as (false, nil).
var ErrCorruptDigest = errors.New("corrupt password digest")

// DefaultCost is the bcrypt cost used when none is configured.
const DefaultCost = 10

// Hasher is a one-way password hashing primitive. The digest embeds its own
// salt and cost, so Verify needs no external state.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) (bool, error)
}

// BcryptHasher implements Hasher on bcrypt.
type BcryptHasher struct {
	cost int
}

var _ Hasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a hasher with the given cost. Costs outside
// bcrypt's supported range fall back to DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives a salted digest from the plaintext.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether the plaintext matches the digest. It returns
// ErrCorruptDigest only when the digest itself is malformed.
func (h *BcryptHasher) Verify(plaintext, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, ErrCorruptDigest
}
