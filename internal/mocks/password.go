package mocks

import (
	"errors"

	"github.com/phrazzld/blog-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher for testing
type MockPasswordHasher struct {
	// HashFn allows for custom hashing logic in tests
	HashFn func(password string) (string, error)

	// Digest is returned by the default implementation
	Digest string
	Err    error
}

// Ensure MockPasswordHasher implements auth.PasswordHasher
var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.Err != nil {
		return "", m.Err
	}
	if m.Digest != "" {
		return m.Digest, nil
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing
type MockPasswordVerifier struct {
	// ShouldSucceed determines whether the password comparison should succeed
	ShouldSucceed bool

	// CompareFn allows for custom comparison logic in tests
	CompareFn func(hashedPassword, password string) error

	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
}

// Ensure MockPasswordVerifier implements auth.PasswordVerifier
var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.CompareCallCount++

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}

	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}
