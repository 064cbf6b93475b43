package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	credentialMinLen = 8
	credentialMaxLen = 20
	folderNameMaxLen = 20
)

// ValidateLoginID enforces the registration rules: 8-20 characters
// containing at least one letter and one digit.
func ValidateLoginID(loginID string) error {
	return validateCredential("login id", loginID)
}

// ValidatePassword enforces the same shape as login ids.
func ValidatePassword(password string) error {
	return validateCredential("password", password)
}

func validateCredential(field, value string) error {
	n := utf8.RuneCountInString(value)
	if n < credentialMinLen || n > credentialMaxLen {
		return fmt.Errorf("%s must be between %d and %d characters", field, credentialMinLen, credentialMaxLen)
	}

	var hasLetter, hasDigit bool
	for _, r := range value {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter {
		return fmt.Errorf("%s must contain at least one letter", field)
	}
	if !hasDigit {
		return fmt.Errorf("%s must contain at least one digit", field)
	}
	return nil
}

func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

func ValidateFolderName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("folder name cannot be empty")
	}

	if utf8.RuneCountInString(name) > folderNameMaxLen {
		return fmt.Errorf("folder name too long (max %d characters)", folderNameMaxLen)
	}

	if !utf8.ValidString(name) {
		return fmt.Errorf("folder name contains invalid UTF-8 characters")
	}

	invalidChars := []string{"<", ">", ":", "\"", "|", "?", "*", "\x00", "/", "\\"}
	for _, char := range invalidChars {
		if strings.Contains(name, char) {
			return fmt.Errorf("folder name contains invalid character: %s", char)
		}
	}
	return nil
}

func ValidateFileName(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	if len(filename) > 255 {
		return fmt.Errorf("filename too long (max 255 characters)")
	}

	if !utf8.ValidString(filename) {
		return fmt.Errorf("filename contains invalid UTF-8 characters")
	}

	invalidChars := []string{"<", ">", ":", "\"", "|", "?", "*", "\x00"}
	for _, char := range invalidChars {
		if strings.Contains(filename, char) {
			return fmt.Errorf("filename contains invalid character: %s", char)
		}
	}
	return nil
}

func ValidateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("category name cannot be empty")
	}
	if len(name) > 100 {
		return fmt.Errorf("category name too long (max 100 characters)")
	}
	return nil
}
