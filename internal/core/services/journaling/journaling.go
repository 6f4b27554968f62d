package journaling

import (
	"context"
	"errors"
	"letsconnect/internal/core/domain/attempt"
	"letsconnect/internal/core/domain/credentials"
	e "letsconnect/internal/core/domain/errors"
	"letsconnect/internal/core/domain/identity"
	"letsconnect/internal/core/domain/logging"
	ratelimiter "letsconnect/internal/core/domain/rate_limiter"
	"letsconnect/internal/core/services"
	"time"
)

type hasAttempt interface {
	GetAttemptAction() attempt.Action
	GetIdentifierKind() credentials.Kind
}

type serviceWithJournal[T hasAttempt, S any] struct {
	log        logging.Logger
	repository attempt.Repository
	now        func() time.Time
	inner      services.Service[T, S]
}

// WithJournal records the outcome of every run of inner. A journal failure
// is logged and never changes what inner returned.
func WithJournal[T hasAttempt, S any](
	log logging.Logger,
	repository attempt.Repository,
	now func() time.Time,
	inner services.Service[T, S],
) services.Service[T, S] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if repository == nil {
		panic(e.NewNilArgumentError("repository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithJournal[T, S]{
		log:        log,
		repository: repository,
		now:        now,
		inner:      inner,
	}
}

func (s *serviceWithJournal[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}

	outcome, reason := classify(err)
	a := attempt.Attempt{
		ID:             attempt.NewID(),
		Action:         input.GetAttemptAction(),
		IdentifierKind: input.GetIdentifierKind(),
		Outcome:        outcome,
		Reason:         reason,
		CreatedAt:      s.now(),
	}
	if journalErr := s.repository.Create(ctx, a); journalErr != nil {
		logging.Err(ctx, s.log, "Could not record attempt.", journalErr, logging.Entry("attempt", a))
	}
	return result, err
}

func classify(err error) (attempt.Outcome, string) {
	if err == nil {
		return attempt.Succeeded, ""
	}

	var validationErr *credentials.ValidationError
	if errors.As(err, &validationErr) {
		return attempt.Rejected, string(validationErr.Reason)
	}
	for _, rejection := range []error{
		identity.ErrInvalidCredentials,
		identity.ErrUsernameTaken,
		identity.ErrEmailTaken,
		ratelimiter.ErrRateLimitExceeded,
	} {
		if errors.Is(err, rejection) {
			return attempt.Rejected, rejection.Error()
		}
	}
	return attempt.Failed, err.Error()
}
