package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")

	tok, err := codec.Issue("acct-123", "alice@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := codec.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "acct-123", claims.Subject)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestCodec_Expired(t *testing.T) {
	codec := NewCodec("test-secret")

	tok, err := codec.Issue("acct-123", "alice@example.com", -1*time.Minute)
	require.NoError(t, err)

	_, err = codec.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodec_WrongSecret(t *testing.T) {
	tok, err := NewCodec("right-secret").Issue("acct-123", "alice@example.com", time.Hour)
	require.NoError(t, err)

	_, err = NewCodec("wrong-secret").Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodec_MutatedToken(t *testing.T) {
	codec := NewCodec("test-secret")

	tok, err := codec.Issue("acct-123", "alice@example.com", time.Hour)
	require.NoError(t, err)

	// Flip a character in the payload segment.
	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	mutated := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = codec.Verify(mutated)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodec_GarbageInput(t *testing.T) {
	codec := NewCodec("test-secret")

	for _, input := range []string{"", "not-a-jwt", "a.b.c", "..", strings.Repeat("x", 4096)} {
		_, err := codec.Verify(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

func TestCodec_RejectsNonHMACSigningMethod(t *testing.T) {
	codec := NewCodec("test-secret")

	// alg=none with the secret appended must not pass the method check.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "acct-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
