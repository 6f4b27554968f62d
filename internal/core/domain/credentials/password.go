package credentials

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf16"

	validation "github.com/go-ozzo/ozzo-validation"
)

const MinPasswordLength = 8

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

var (
	uppercasePattern = regexp.MustCompile(`[A-Z]`)
	specialPattern   = regexp.MustCompile(`[!@#$%^&*()_+{}\[\]:;<>,.?~\\-]`)

	errTooShort           = errors.New("password is too short")
	errHasLineTerminators = errors.New("password contains line terminators")

	strongPasswordRules = []validation.Rule{
		validation.Required,
		validation.By(withoutLineTerminators),
		validation.By(minLength(MinPasswordLength)),
		validation.Match(uppercasePattern),
		validation.Match(specialPattern),
	}
)

func PasswordsMatch(password, confirmPassword RawPassword) bool {
	return password == confirmPassword
}

// IsStrongPassword requires at least MinPasswordLength characters, an
// uppercase ASCII letter and one special character. Digits and lowercase
// letters are not required.
func IsStrongPassword(password RawPassword) bool {
	return validation.Validate(string(password), strongPasswordRules...) == nil
}

// Length is counted in UTF-16 code units, the way mobile clients count it.
func minLength(min int) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if len(utf16.Encode([]rune(s))) < min {
			return errTooShort
		}
		return nil
	}
}

func withoutLineTerminators(value interface{}) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, "\n\r\u2028\u2029") {
		return errHasLineTerminators
	}
	return nil
}
