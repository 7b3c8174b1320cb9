package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers every way a token can fail verification: bad
// signature, wrong signing method, malformed structure, or expiry.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the session claim set. Subject carries the account ID.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Codec signs and verifies self-contained session tokens. The secret is the
// only state and is read-only after construction.
type Codec struct {
	secret []byte
}

// NewCodec creates a codec signing with the given process-wide secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue signs a token asserting the subject's identity for the given TTL.
func (c *Codec) Issue(subjectID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
		Email: email,
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.secret)
}

// Verify parses and validates a token string. Attacker-supplied garbage is
// reported as ErrInvalidToken, never a panic.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
