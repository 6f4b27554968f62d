package signup

import (
	"encoding/json"
	"errors"
	"io"
	"letsconnect/internal/core/domain/credentials"
	"letsconnect/internal/core/domain/identity"
	ratelimiter "letsconnect/internal/core/domain/rate_limiter"
	"letsconnect/internal/core/services"
	signup "letsconnect/internal/core/services/sign_up"
	"letsconnect/internal/http/handlers/response"
	"net/http"
)

type Handler struct {
	service services.Service[signup.Input, signup.Result]
}

func New(service services.Service[signup.Input, signup.Result]) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Username        string `json:"username"`
	Identifier      string `json:"identifier"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

type Result struct {
	Next string `json:"next,omitempty"`
}

type invalidCredentials struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		signup.Input{
			Username:        identity.Username(input.Username),
			Identifier:      input.Identifier,
			Password:        credentials.RawPassword(input.Password),
			ConfirmPassword: credentials.RawPassword(input.ConfirmPassword),
		},
	)
	var validationErr *credentials.ValidationError
	if errors.As(err, &validationErr) {
		response.Render(
			rw,
			invalidCredentials{Error: validationErr.Error(), Reason: string(validationErr.Reason)},
			http.StatusUnprocessableEntity,
		)
		return
	}
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if errors.Is(err, identity.ErrUsernameTaken) || errors.Is(err, identity.ErrEmailTaken) {
		response.RenderError(rw, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		response.RenderFailure(rw, err)
		return
	}

	response.Render(rw, Result{Next: string(result.Next)}, http.StatusCreated)
}
