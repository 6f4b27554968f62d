package getcurrentuser

import (
	"context"
	"errors"
	e "letsconnect/internal/core/domain/errors"
	"letsconnect/internal/core/domain/identity"
	"letsconnect/internal/core/domain/logging"
	"letsconnect/internal/core/services"
)

type Input struct {
	Token identity.SessionToken
}

type Result struct {
	User identity.User
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
	u, err := s.identityService.CurrentUser(ctx, input.Token)
	if err != nil && !errors.Is(err, identity.ErrInvalidSessionToken) {
		logging.Err(ctx, s.log, "Could not get current user.", err)
	}
	return Result{User: u}, err
}
