package credentials

import "strings"

// Kind tells how an identifier was classified. The values double as the
// field names the identity service expects on sign-up.
type Kind string

const (
	Email  Kind = "email"
	Mobile Kind = "mobileNumber"
)

type Identifier struct {
	Kind  Kind
	Value string
}

// ClassifyIdentifier treats anything containing '@' as an email address and
// everything else as a mobile number. The value is kept as typed.
func ClassifyIdentifier(identifier string) Identifier {
	if strings.Contains(identifier, "@") {
		return Identifier{Kind: Email, Value: identifier}
	}
	return Identifier{Kind: Mobile, Value: identifier}
}
