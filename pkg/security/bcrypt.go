// Package security contains everything related to the security of user data
package security

import "golang.org/x/crypto/bcrypt"

type PasswordHasher struct {
	Cost int
}

func NewHasher() *PasswordHasher {
	return &PasswordHasher{
		Cost: bcrypt.DefaultCost,
	}
}

// Hash returns a salted one-way hash of p. Hashing the same password
// twice yields two different hashes, both of which verify.
func (h *PasswordHasher) Hash(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), h.Cost)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Verify compares a plaintext password p with the stored hash e. Hashes
// produced by a different scheme simply fail to verify, they never error.
func (h *PasswordHasher) Verify(p, e string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e), []byte(p)) == nil
}
