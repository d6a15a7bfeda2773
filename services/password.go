package services

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the fixed work factor of 10 rounds.
const bcryptCost = 10

// HashPassword produces a salted one-way digest of the plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against the stored digest.
// bcrypt does the constant-time comparison internally.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
