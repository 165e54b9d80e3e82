package utils

import (
	"net/mail"
	"strings"
)

func IsValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// NormalizeEmail lowercases and trims an address so duplicate checks are
// stable across submissions.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
