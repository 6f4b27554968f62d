package attempt

import (
	"context"
	"letsconnect/internal/core/domain/credentials"
	"time"

	"github.com/google/uuid"
)

type ID uuid.UUID

func NewID() ID {
	return ID(uuid.New())
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

type Action string

const (
	LogIn  Action = "login"
	SignUp Action = "signup"
)

type Outcome string

const (
	// Succeeded means the identity service accepted the request.
	Succeeded Outcome = "succeeded"
	// Rejected means the request was refused before or by the identity
	// service for a user-correctable reason.
	Rejected Outcome = "rejected"
	// Failed covers everything else: transport and service errors.
	Failed Outcome = "failed"
)

// Attempt is a journal record of one log in or sign up. Identifiers and
// passwords are never recorded.
type Attempt struct {
	ID             ID
	Action         Action
	IdentifierKind credentials.Kind
	Outcome        Outcome
	Reason         string
	CreatedAt      time.Time
}

type Repository interface {
	Create(ctx context.Context, attempt Attempt) error
}
