package services

import (
	"letsconnect/internal/app/deps"
	drl "letsconnect/internal/core/domain/rate_limiter"
	"letsconnect/internal/core/services"
	getcurrentuser "letsconnect/internal/core/services/get_current_user"
	"letsconnect/internal/core/services/journaling"
	login "letsconnect/internal/core/services/log_in"
	ratelimiting "letsconnect/internal/core/services/rate_limiting"
	signup "letsconnect/internal/core/services/sign_up"
)

type Services struct {
	SignUp         services.Service[signup.Input, signup.Result]
	LogIn          services.Service[login.Input, login.Result]
	GetCurrentUser services.Service[getcurrentuser.Input, getcurrentuser.Result]
}

func InitServices(deps *deps.Deps) *Services {
	return &Services{
		SignUp: journaling.WithJournal(
			deps.Logger,
			deps.AttemptRepository,
			deps.Now,
			ratelimiting.WithRateLimiting(
				deps.Logger,
				deps.RateLimiter,
				drl.Limit{Interval: drl.Hour, Value: deps.Config.SignUpRateLimitPerHour},
				signup.New(deps.Logger, deps.IdentityService),
			),
		),
		LogIn: journaling.WithJournal(
			deps.Logger,
			deps.AttemptRepository,
			deps.Now,
			ratelimiting.WithRateLimiting(
				deps.Logger,
				deps.RateLimiter,
				drl.Limit{Interval: drl.Hour, Value: deps.Config.LogInRateLimitPerHour},
				login.New(deps.Logger, deps.IdentityService),
			),
		),
		GetCurrentUser: getcurrentuser.New(deps.Logger, deps.IdentityService),
	}
}
