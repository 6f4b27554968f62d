package response

import (
	"encoding/json"
	"errors"
	"letsconnect/internal/core/domain/identity"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

func RenderUnauthorized(rw http.ResponseWriter) {
	RenderError(rw, "invalid authentication token", http.StatusUnauthorized)
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

func RenderRateLimitExceeded(rw http.ResponseWriter) {
	RenderError(rw, "rate limit exceeded", http.StatusTooManyRequests)
}

// RenderFailure renders identity service failures with their own text and
// anything else as an internal error.
func RenderFailure(rw http.ResponseWriter, err error) {
	var serviceErr *identity.ServiceError
	if errors.As(err, &serviceErr) {
		RenderError(rw, serviceErr.Message, http.StatusBadGateway)
		return
	}
	RenderInternalError(rw)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
