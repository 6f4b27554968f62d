package login

import (
	"encoding/json"
	"errors"
	"io"
	"letsconnect/internal/core/domain/credentials"
	"letsconnect/internal/core/domain/identity"
	ratelimiter "letsconnect/internal/core/domain/rate_limiter"
	"letsconnect/internal/core/services"
	login "letsconnect/internal/core/services/log_in"
	"letsconnect/internal/http/handlers/response"
	"net/http"
)

type Handler struct {
	service services.Service[login.Input, login.Result]
}

func New(service services.Service[login.Input, login.Result]) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

type Result struct {
	Token string `json:"token"`
	Next  string `json:"next"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		login.Input{Identifier: input.Identifier, Password: credentials.RawPassword(input.Password)},
	)
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if errors.Is(err, identity.ErrInvalidCredentials) {
		response.RenderError(rw, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		response.RenderFailure(rw, err)
		return
	}

	response.Render(
		rw,
		Result{Token: string(result.Session.Token), Next: string(result.Next)},
		http.StatusOK,
	)
}
