package app

import (
	"context"
	"letsconnect/internal/app/services"
	"letsconnect/internal/core/domain/credentials"
	"letsconnect/internal/core/domain/identity"
	"letsconnect/internal/core/domain/logging"
	getcurrentuser "letsconnect/internal/core/services/get_current_user"
	login "letsconnect/internal/core/services/log_in"
	signup "letsconnect/internal/core/services/sign_up"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (http.Handler, *identity.FakeService) {
	t.Helper()
	logger := logging.NewFakeLogger()
	identityService := identity.NewFakeService()
	return NewRouter([]string{"https://app.example"}, &services.Services{
		SignUp:         signup.New(logger, identityService),
		LogIn:          login.New(logger, identityService),
		GetCurrentUser: getcurrentuser.New(logger, identityService),
	}), identityService
}

func TestRoutes(t *testing.T) {
	assert := require.New(t)
	router, identityService := newTestRouter(t)
	_, err := identityService.SignUp(context.Background(), identity.SignUpInput{
		Username:   "john",
		Password:   "Str0ng!ok",
		Identifier: credentials.ClassifyIdentifier("john@example.com"),
	})
	assert.Nil(err)

	cases := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{
			method: http.MethodPost,
			path:   "/auth/signup",
			body:   `{"username":"jane","identifier":"5551234567","password":"Str0ng!ok","confirmPassword":"Str0ng!ok"}`,
			status: http.StatusCreated,
		},
		{method: http.MethodPost, path: "/auth/login", body: `{"identifier":"john","password":"Str0ng!ok"}`, status: http.StatusOK},
		{method: http.MethodGet, path: "/home", status: http.StatusUnauthorized},
		{method: http.MethodGet, path: "/auth/login", status: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/forgot-password", status: http.StatusNotFound},
	}
	for _, testcase := range cases {
		rw := httptest.NewRecorder()
		router.ServeHTTP(rw, httptest.NewRequest(testcase.method, testcase.path, strings.NewReader(testcase.body)))
		assert.Equal(testcase.status, rw.Code, "%s %s", testcase.method, testcase.path)
	}
}

func TestCORS(t *testing.T) {
	assert := require.New(t)
	router, _ := newTestRouter(t)

	r := httptest.NewRequest(http.MethodOptions, "/auth/login", nil)
	r.Header.Set("Origin", "https://app.example")
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, r)

	assert.Equal("https://app.example", rw.Header().Get("Access-Control-Allow-Origin"))
}
