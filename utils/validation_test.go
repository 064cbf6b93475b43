package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLoginID(t *testing.T) {
	assert.NoError(t, ValidateLoginID("abcdef12"))
	assert.NoError(t, ValidateLoginID("a1234567890bcdefghij"))

	assert.Error(t, ValidateLoginID("short1"), "below minimum length")
	assert.Error(t, ValidateLoginID(strings.Repeat("a1", 11)), "above maximum length")
	assert.Error(t, ValidateLoginID("12345678"), "digits only")
	assert.Error(t, ValidateLoginID("abcdefgh"), "letters only")
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("passw0rd"))
	assert.Error(t, ValidatePassword("pass1"))
	assert.Error(t, ValidatePassword("password"))
	assert.Error(t, ValidatePassword("12345678"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.NoError(t, ValidateEmail("user.name+tag@sub.example.co"))

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
}

func TestValidateFolderName(t *testing.T) {
	assert.NoError(t, ValidateFolderName("reports"))
	assert.NoError(t, ValidateFolderName("2026 예산"))

	assert.Error(t, ValidateFolderName(""))
	assert.Error(t, ValidateFolderName("   "))
	assert.Error(t, ValidateFolderName("a/b"))
	assert.Error(t, ValidateFolderName(strings.Repeat("x", 21)))
}

func TestValidateFileName(t *testing.T) {
	assert.NoError(t, ValidateFileName("report (final).pdf"))

	assert.Error(t, ValidateFileName(""))
	assert.Error(t, ValidateFileName("bad|name.pdf"))
	assert.Error(t, ValidateFileName("what?.pdf"))
	assert.Error(t, ValidateFileName(strings.Repeat("x", 256)))
}

func TestValidateCategoryName(t *testing.T) {
	assert.NoError(t, ValidateCategoryName("invoices"))
	assert.Error(t, ValidateCategoryName(" "))
	assert.Error(t, ValidateCategoryName(strings.Repeat("x", 101)))
}
