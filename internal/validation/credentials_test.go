package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "student@example.com", wantErr: false},
		{name: "subdomain", email: "a@mail.example.co.uk", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "no at sign", email: "student.example.com", wantErr: true},
		{name: "no domain dot", email: "student@example", wantErr: true},
		{name: "spaces", email: "stu dent@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "long enough", password: "password123", wantErr: false},
		{name: "exactly minimum", password: "12345678", wantErr: false},
		{name: "too short", password: "1234567", wantErr: true},
		{name: "empty", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUserType(t *testing.T) {
	assert.NoError(t, ValidateUserType("student"))
	assert.NoError(t, ValidateUserType("teacher"))
	assert.Error(t, ValidateUserType("admin"))
	assert.Error(t, ValidateUserType(""))
}
