package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig holds configuration for password hashing and verification.
type PasswordConfig struct {
	BcryptCost int
}

// NewPasswordConfig reads BCRYPT_COST (default: 12) from the environment.
func NewPasswordConfig() (*PasswordConfig, error) {
	cost := 12
	if s := os.Getenv("BCRYPT_COST"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
		}
		cost = parsed
	}

	if cost < bcrypt.MinCost || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d", cost)
	}
	return &PasswordConfig{BcryptCost: cost}, nil
}

// HashPassword hashes a password using bcrypt.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password with a stored hash.
func (c *PasswordConfig) VerifyPassword(pw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
