package validators

import (
	"net/mail"
	"regexp"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

func IsEmailValid(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

// IsPhoneValid accepts exactly 10 digits. An empty phone is valid: the field
// is optional everywhere it appears.
func IsPhoneValid(phone string) bool {
	if phone == "" {
		return true
	}
	return phonePattern.MatchString(phone)
}
