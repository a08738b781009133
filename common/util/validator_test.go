package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecipient struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,min=2,max=20"`
}

type testUploadTarget struct {
	Provider string `validate:"required,oneof=drive cloudinary minio"`
	Folder   string `validate:"required_if=Provider drive"`
}

type testRender struct {
	FontSize int `validate:"gt=0"`
}

// TestValidateStruct_ValidData tests validation with valid data
func TestValidateStruct_ValidData(t *testing.T) {
	err := ValidateStruct(testRecipient{Email: "ada@example.com", Username: "ada"})
	assert.NoError(t, err, "Valid struct should pass validation")
}

// TestValidateStruct_InvalidEmail tests validation with invalid email
func TestValidateStruct_InvalidEmail(t *testing.T) {
	err := ValidateStruct(testRecipient{Email: "invalid-email", Username: "ada"})
	assert.Error(t, err, "Invalid email should fail validation")
}

func TestValidateStruct_ConditionalRequired(t *testing.T) {
	assert.NoError(t, ValidateStruct(testUploadTarget{Provider: "cloudinary"}))
	assert.Error(t, ValidateStruct(testUploadTarget{Provider: "drive"}))
	assert.NoError(t, ValidateStruct(testUploadTarget{Provider: "drive", Folder: "certs"}))
}

func TestGetValidationErrors_Messages(t *testing.T) {
	testCases := []struct {
		name          string
		input         any
		expectedError string
	}{
		{"required", testRecipient{Username: "ada"}, "Email is required"},
		{"email", testRecipient{Email: "nope", Username: "ada"}, "Email must be a valid email"},
		{"min", testRecipient{Email: "ada@example.com", Username: "a"}, "Username must be at least 2"},
		{"max", testRecipient{Email: "ada@example.com", Username: "a-username-that-is-far-too-long"}, "Username must be at most 20"},
		{"oneof", testUploadTarget{Provider: "dropbox"}, "Provider must be one of: drive cloudinary minio"},
		{"required_if", testUploadTarget{Provider: "drive"}, "Folder is required when Provider drive"},
		{"gt", testRender{FontSize: 0}, "FontSize must be greater than 0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(tc.input)
			require.Error(t, err)

			messages := GetValidationErrors(err)
			require.Len(t, messages, 1)
			assert.Equal(t, tc.expectedError, messages[0])
		})
	}
}

// TestGetValidationErrors_NonValidationError tests handling of non-validation errors
func TestGetValidationErrors_NonValidationError(t *testing.T) {
	messages := GetValidationErrors(errors.New("boom"))
	assert.Empty(t, messages)
}

// TestGetValidationErrors_NilError tests handling of nil error
func TestGetValidationErrors_NilError(t *testing.T) {
	assert.Empty(t, GetValidationErrors(nil))
}
