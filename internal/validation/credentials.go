package validation

import (
	"fmt"
	"regexp"
)

// EmailPattern is deliberately loose; the server performs the
// authoritative validation
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// MinPasswordLen is the minimum accepted password length
const MinPasswordLen = 8

// UserTypes lists the account kinds the platform knows about
var UserTypes = []string{"student", "teacher"}

// ValidateEmail checks that email looks like an address
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email is not a valid address")
	}
	return nil
}

// ValidatePassword checks the minimum password requirements
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	return nil
}

// ValidateUserType checks that userType is one of the supported kinds
func ValidateUserType(userType string) error {
	for _, t := range UserTypes {
		if userType == t {
			return nil
		}
	}
	return fmt.Errorf("user type must be one of %v", UserTypes)
}
