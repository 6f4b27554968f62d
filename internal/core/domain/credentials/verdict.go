package credentials

type Reason string

const (
	MismatchedPasswords Reason = "mismatched_passwords"
	WeakPassword        Reason = "weak_password"
)

const (
	MismatchedPasswordsMessage = "Oops! Passwords do not match"
	WeakPasswordMessage        = "Password requirements not met: it should be at least 8 characters long, " +
		"feature an uppercase letter along with a special character"
)

func (r Reason) Message() string {
	switch r {
	case MismatchedPasswords:
		return MismatchedPasswordsMessage
	case WeakPassword:
		return WeakPasswordMessage
	}
	return ""
}

// Input is what a user types into the sign-up form.
type Input struct {
	Identifier      string
	Password        RawPassword
	ConfirmPassword RawPassword
}

// Verdict is either valid, carrying the classified identifier, or invalid
// with exactly one reason.
type Verdict struct {
	Identifier Identifier
	Reason     Reason
}

func Valid(identifier Identifier) Verdict {
	return Verdict{Identifier: identifier}
}

func Invalid(reason Reason) Verdict {
	return Verdict{Reason: reason}
}

func (v Verdict) IsValid() bool {
	return v.Reason == ""
}

func (v Verdict) Message() string {
	return v.Reason.Message()
}

func (v Verdict) Err() error {
	if v.IsValid() {
		return nil
	}
	return &ValidationError{Reason: v.Reason}
}

type ValidationError struct {
	Reason Reason
}

func (e *ValidationError) Error() string {
	return e.Reason.Message()
}

// ValidateSignUp reports a password mismatch before a weak password, so a
// weak and mismatched pair is always rejected as mismatched.
func ValidateSignUp(input Input) Verdict {
	if !PasswordsMatch(input.Password, input.ConfirmPassword) {
		return Invalid(MismatchedPasswords)
	}
	if !IsStrongPassword(input.Password) {
		return Invalid(WeakPassword)
	}
	return Valid(ClassifyIdentifier(input.Identifier))
}
