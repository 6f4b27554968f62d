package signup

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

type Input struct {
	Username        identity.Username
	Identifier      string
	Password        credentials.RawPassword
	ConfirmPassword credentials.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "sign-up::" + i.Identifier
}

func (i Input) GetAttemptAction() attempt.Action {
	return attempt.SignUp
}

func (i Input) GetIdentifierKind() credentials.Kind {
	return credentials.ClassifyIdentifier(i.Identifier).Kind
}

// Result of a successful sign up. Next is always navigation.None: the
// client stays on the sign-up screen.
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
	verdict := credentials.ValidateSignUp(credentials.Input{
		Identifier:      input.Identifier,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if !verdict.IsValid() {
		s.log.Info(
			ctx,
			"Sign up credentials are not valid.",
			logging.Entry("username", input.Username),
			logging.Entry("reason", verdict.Reason),
		)
		return result, verdict.Err()
	}

	session, err := s.identityService.SignUp(ctx, identity.SignUpInput{
		Username:   input.Username,
		Password:   input.Password,
		Identifier: verdict.Identifier,
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, identity.ErrUsernameTaken) || errors.Is(err, identity.ErrEmailTaken) {
		s.log.Info(
			ctx,
			"Account already exists.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not sign up user.",
			logging.Entry("username", input.Username),
			logging.Entry("identifierKind", verdict.Identifier.Kind),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"User has signed up.",
		logging.Entry("userId", session.User.ID),
		logging.Entry("identifierKind", verdict.Identifier.Kind),
	)
	return Result{Session: session, Next: navigation.None}, nil
}
