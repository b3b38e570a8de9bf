package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"valid simple", "user@example.com", true},
		{"valid subdomain", "name.surname+tag@sub.example.co", true},
		{"valid numbers", "user123@domain.io", true},
		{"valid percent and underscore", "a_b%c@domain.org", true},
		{"empty", "", false},
		{"no at", "plainaddress", false},
		{"missing domain", "user@", false},
		{"missing user", "@domain.com", false},
		{"one-letter TLD", "user@domain.c", false},
		{"numeric TLD", "user@domain.12", false},
		{"double at", "user@@domain.com", false},
		{"no dot in domain", "user@domain", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"too short", "Abc12", ErrPasswordTooShort},
		{"too short even with complexity", "Ab1", ErrPasswordTooShort},
		{"no uppercase", "alllowercase1", ErrPasswordTooWeak},
		{"no lowercase", "ALLUPPERCASE1", ErrPasswordTooWeak},
		{"no number", "MixedCaseNoNumber", ErrPasswordTooWeak},
		{"valid min length", "Abcdef1G", nil},
		{"valid longer", "StrongPass1", nil},
		{"valid with specials", "Str0ng!Pass#", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePassword(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidatePassword_StableMessages(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "password must be at least 8 characters long", ErrPasswordTooShort.Error())
	assert.Equal(t, "password must contain uppercase, lowercase, and numeric characters", ErrPasswordTooWeak.Error())
}
