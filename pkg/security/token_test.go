package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClaims = Claims{
	UserID:    "usr123",
	Email:     "a@b.com",
	FirstName: "A",
	LastName:  "B",
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	ti := NewTokenIssuer("test-secret")

	token, err := ti.Issue(testClaims, SessionTTL)
	require.NoError(t, err)

	got, err := ti.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "usr123", got.UserID)
	assert.Equal(t, "a@b.com", got.Email)
	assert.Equal(t, "A", got.FirstName)
	assert.Equal(t, "B", got.LastName)

	exp := got.ExpiresAt.Time
	assert.WithinDuration(t, time.Now().Add(SessionTTL), exp, time.Minute)
}

func TestVerifyExpired(t *testing.T) {
	ti := NewTokenIssuer("test-secret")

	token, err := ti.Issue(testClaims, -time.Hour)
	require.NoError(t, err)

	_, err = ti.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTamperedSignature(t *testing.T) {
	ti := NewTokenIssuer("test-secret")

	token, err := ti.Issue(testClaims, SessionTTL)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := parts[2]
	for i := range sig {
		flipped := byte('A')
		if sig[i] == 'A' {
			flipped = 'B'
		}

		tampered := parts[0] + "." + parts[1] + "." + sig[:i] + string(flipped) + sig[i+1:]

		_, err := ti.Verify(tampered)
		assert.ErrorIs(t, err, ErrInvalidToken, "byte %d", i)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("one-secret").Issue(testClaims, SessionTTL)
	require.NoError(t, err)

	_, err = NewTokenIssuer("other-secret").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongAlgorithm(t *testing.T) {
	ti := NewTokenIssuer("test-secret")

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, testClaims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ti.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)

	hs384, err := jwt.NewWithClaims(jwt.SigningMethodHS384, testClaims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ti.Verify(hs384)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformed(t *testing.T) {
	ti := NewTokenIssuer("test-secret")

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := ti.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerifyIncompleteClaims(t *testing.T) {
	ti := NewTokenIssuer("test-secret")

	// Structurally valid token with no user ID behind it
	token, err := ti.Issue(Claims{Email: "a@b.com"}, SessionTTL)
	require.NoError(t, err)

	_, err = ti.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
