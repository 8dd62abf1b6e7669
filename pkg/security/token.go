package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session lifetimes picked at login based on the remember flag
const (
	SessionTTL         = time.Hour * 24
	SessionTTLRemember = time.Hour * 24 * 30
)

// ErrInvalidToken covers every way a token can fail verification:
// bad signature, malformed structure, expired, wrong algorithm or
// missing claims. Callers never learn which check failed.
var ErrInvalidToken = errors.New("invalid session token")

// Claims is the identity snapshot embedded in a session token. The
// fields are fixed at login and go stale if the record changes, which
// is why /api/user reloads the record instead of trusting these.
type Claims struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// Issue signs a token carrying c that expires ttl from now.
func (t *TokenIssuer) Issue(c Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	c.IssuedAt = jwt.NewNumericDate(now)
	c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
}

// Verify parses and validates a token string. All failure modes
// collapse into ErrInvalidToken.
func (t *TokenIssuer) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	// A structurally incomplete token is as useless as a forged one
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
