package login

import (
	"context"
	"errors"
	"letsconnect/internal/core/domain/attempt"
	"letsconnect/internal/core/domain/credentials"
	e "letsconnect/internal/core/domain/errors"
	"letsconnect/internal/core/domain/identity"
	"letsconnect/internal/core/domain/logging"
	"letsconnect/internal/core/domain/navigation"
	"letsconnect/internal/core/services"
)

// Input is passed to the identity service exactly as typed. Log in does not
// validate password strength.
type Input struct {
	Identifier string
	Password   credentials.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "log-in::" + i.Identifier
}

func (i Input) GetAttemptAction() attempt.Action {
	return attempt.LogIn
}

func (i Input) GetIdentifierKind() credentials.Kind {
	return credentials.ClassifyIdentifier(i.Identifier).Kind
}

type Result struct {
	Session identity.Session
	Next    navigation.Destination
}

type service struct {
	log             logging.Logger
	identityService identity.Service
}

func New(
	log logging.Logger,
	identityService identity.Service,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if identityService == nil {
		panic(e.NewNilArgumentError("identityService"))
	}
	return &service{
		log:             log,
		identityService: identityService,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	session, err := s.identityService.LogIn(ctx, input.Identifier, input.Password)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, identity.ErrInvalidCredentials) {
		s.log.Info(ctx, "Invalid credentials.", logging.Entry("identifier", input.Identifier))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not log in user.",
			logging.Entry("identifier", input.Identifier),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User has logged in.", logging.Entry("userId", session.User.ID))
	return Result{Session: session, Next: navigation.Home}, nil
}
