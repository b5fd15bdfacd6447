package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	t.Parallel() // Enable parallel execution
	// Test valid user creation
	validName := "Test Author"
	validEmail := "test@example.com"
	validPassword := "plainpassword123"

	user, err := NewUser(validName, validEmail, validPassword)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Name != validName {
		t.Errorf("Expected name %s, got %s", validName, user.Name)
	}

	if user.Email != validEmail {
		t.Errorf("Expected email %s, got %s", validEmail, user.Email)
	}

	if user.Password != validPassword {
		t.Errorf("Expected password %s, got %s", validPassword, user.Password)
	}

	if user.HashedPassword != "" {
		t.Errorf("Expected empty hashed password, got %s", user.HashedPassword)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if user.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Test empty name
	_, err = NewUser("", validEmail, validPassword)
	if err != ErrEmptyName {
		t.Errorf("Expected error %v, got %v", ErrEmptyName, err)
	}

	// Test invalid email
	_, err = NewUser(validName, "", validPassword)
	if err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	_, err = NewUser(validName, "invalidemail", validPassword)
	if err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	// Test invalid password
	_, err = NewUser(validName, validEmail, "short")
	if err != ErrPasswordTooShort {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooShort, err)
	}

	_, err = NewUser(validName, validEmail, strings.Repeat("x", 73))
	if err != ErrPasswordTooLong {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooLong, err)
	}

	_, err = NewUser(validName, validEmail, "")
	if err != ErrEmptyPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution
	validUser := User{
		ID:             uuid.New(),
		Name:           "Test Author",
		Email:          "test@example.com",
		HashedPassword: "hashedpassword123",
	}

	// Test valid user loaded from the store (no plaintext password)
	if err := validUser.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test invalid ID
	invalidUser := validUser
	invalidUser.ID = uuid.Nil
	if err := invalidUser.Validate(); err != ErrEmptyUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserID, err)
	}

	// Test empty name
	invalidUser = validUser
	invalidUser.Name = "   "
	if err := invalidUser.Validate(); err != ErrEmptyName {
		t.Errorf("Expected error %v, got %v", ErrEmptyName, err)
	}

	// Test empty email
	invalidUser = validUser
	invalidUser.Email = ""
	if err := invalidUser.Validate(); err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	// Test malformed email
	invalidUser = validUser
	invalidUser.Email = "not-an-email"
	if err := invalidUser.Validate(); err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	// Test missing both password forms
	invalidUser = validUser
	invalidUser.HashedPassword = ""
	if err := invalidUser.Validate(); err != ErrEmptyPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}

	// Test plaintext password bounds during registration
	invalidUser = validUser
	invalidUser.HashedPassword = ""
	invalidUser.Password = "1234567"
	if err := invalidUser.Validate(); err != ErrPasswordTooShort {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooShort, err)
	}

	invalidUser.Password = strings.Repeat("x", 73)
	if err := invalidUser.Validate(); err != ErrPasswordTooLong {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooLong, err)
	}
}

func TestValidateEmailFormat(t *testing.T) {
	t.Parallel() // Enable parallel execution
	tests := []struct {
		email string
		valid bool
	}{
		{"test@example.com", true},
		{"a@b.co", true},
		{"first.last@sub.domain.org", true},
		{"", false},
		{"plainstring", false},
		{"@example.com", false},
		{"test@", false},
		{"test@nodot", false},
		{"test@domain.", false},
		{"test@.com", false},
	}

	for _, tt := range tests {
		if got := validateEmailFormat(tt.email); got != tt.valid {
			t.Errorf("validateEmailFormat(%q) = %v, want %v", tt.email, got, tt.valid)
		}
	}
}
