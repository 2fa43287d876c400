// internal/service/validation.go
package service

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	usernameMinLength = 3
	usernameMaxLength = 50
	passwordMinLength = 6
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidateRegistration checks registration input and returns the rule
// failure messages in evaluation order: username rules first, then email,
// then password. Each field reports at most its first failing rule, but
// failures across different fields accumulate. An empty slice means the
// input is valid.
func ValidateRegistration(username, email, password string) []string {
	var errs []string

	switch {
	case username == "":
		errs = append(errs, "Username is required")
	case utf8.RuneCountInString(username) < usernameMinLength:
		errs = append(errs, "Username must be at least 3 characters long")
	case utf8.RuneCountInString(username) > usernameMaxLength:
		errs = append(errs, "Username must be less than 50 characters")
	case !usernamePattern.MatchString(username):
		errs = append(errs, "Username can only contain letters, numbers, and underscores")
	}

	if email == "" {
		errs = append(errs, "Email is required")
	} else if reason := checkEmail(email); reason != "" {
		errs = append(errs, fmt.Sprintf("Invalid email: %s", reason))
	}

	switch {
	case password == "":
		errs = append(errs, "Password is required")
	case utf8.RuneCountInString(password) < passwordMinLength:
		errs = append(errs, "Password must be at least 6 characters long")
	}

	return errs
}

// checkEmail validates email syntax only; deliverability is not checked.
// It returns an empty string for a valid address and the failure reason otherwise.
func checkEmail(email string) string {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return strings.TrimPrefix(err.Error(), "mail: ")
	}
	if addr.Address != email {
		return "address must not contain a display name"
	}
	return ""
}
