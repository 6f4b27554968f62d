package identity

import (
	"context"
	c "letsconnect/internal/core/domain/common"
	"letsconnect/internal/core/domain/credentials"
	"time"
)

type UserID string

type Username string

type SessionToken string

func (t SessionToken) String() string {
	return "***"
}

type User struct {
	ID           UserID
	Username     Username
	Email        c.Optional[string]
	MobileNumber c.Optional[string]
	CreatedAt    time.Time
}

type Session struct {
	User  User
	Token SessionToken
}

type SignUpInput struct {
	Username   Username
	Password   credentials.RawPassword
	Identifier credentials.Identifier
}

// Service is the external system of record for accounts and sessions.
// Failures other than the sentinel errors are returned as *ServiceError and
// are never retried.
type Service interface {
	LogIn(ctx context.Context, identifier string, password credentials.RawPassword) (Session, error)
	SignUp(ctx context.Context, input SignUpInput) (Session, error)
	CurrentUser(ctx context.Context, token SessionToken) (User, error)
}
