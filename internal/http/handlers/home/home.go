package home

import (
	"errors"
	"letsconnect/internal/core/domain/identity"
	"letsconnect/internal/core/services"
	getcurrentuser "letsconnect/internal/core/services/get_current_user"
	"letsconnect/internal/http/handlers/auth"
	"letsconnect/internal/http/handlers/response"
	"net/http"
)

type Handler struct {
	service services.Service[getcurrentuser.Input, getcurrentuser.Result]
}

func New(service services.Service[getcurrentuser.Input, getcurrentuser.Result]) *Handler {
	return &Handler{service: service}
}

type Result struct {
	User response.User `json:"user"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseToken(r)
	if !ok {
		response.RenderUnauthorized(rw)
		return
	}

	result, err := h.service.Run(r.Context(), getcurrentuser.Input{Token: token})
	if errors.Is(err, identity.ErrInvalidSessionToken) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderFailure(rw, err)
		return
	}

	user := response.User{}
	user.FromDomainUser(result.User)
	response.Render(rw, Result{User: user}, http.StatusOK)
}
