package login

import (
	"context"
	"letsconnect/internal/core/domain/credentials"
	"letsconnect/internal/core/domain/identity"
	"letsconnect/internal/core/domain/logging"
	ratelimiter "letsconnect/internal/core/domain/rate_limiter"
	login "letsconnect/internal/core/services/log_in"
	ratelimiting "letsconnect/internal/core/services/rate_limiting"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	IdentityService *identity.FakeService
	RateLimiter     *ratelimiter.FakeRateLimiter
	Session         identity.Session
	Handler         *Handler
}

func (suite *testSuite) SetupTest() {
	logger := logging.NewFakeLogger()
	suite.IdentityService = identity.NewFakeService()
	suite.RateLimiter = ratelimiter.NewFakeRateLimiter(true)
	suite.Handler = New(ratelimiting.WithRateLimiting(
		logger,
		suite.RateLimiter,
		ratelimiter.Limit{Value: 10, Interval: ratelimiter.Hour},
		login.New(logger, suite.IdentityService),
	))

	session, err := suite.IdentityService.SignUp(context.Background(), identity.SignUpInput{
		Username:   "john",
		Password:   "Str0ng!ok",
		Identifier: credentials.ClassifyIdentifier("john@example.com"),
	})
	suite.Require().Nil(err)
	suite.Session = session
}

func TestLogInHandler(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) post(body string) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	suite.Handler.ServeHTTP(rw, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body)))
	return rw
}

func (suite *testSuite) TestSuccessNavigatesHome() {
	rw := suite.post(`{"identifier":"john","password":"Str0ng!ok"}`)

	assert := suite.Require()
	assert.Equal(http.StatusOK, rw.Code)
	assert.Contains(rw.Body.String(), `"next":"home"`)
	assert.NotContains(rw.Body.String(), `"token":""`)
}

func (suite *testSuite) TestInvalidCredentials() {
	rw := suite.post(`{"identifier":"john","password":"wrong"}`)

	assert := suite.Require()
	assert.Equal(http.StatusUnauthorized, rw.Code)
	assert.JSONEq(`{"error":"invalid credentials"}`, rw.Body.String())
}

func (suite *testSuite) TestEmptyInputIsPassedThrough() {
	rw := suite.post(`{}`)

	assert := suite.Require()
	assert.Equal(http.StatusUnauthorized, rw.Code)
	assert.Equal([]string{""}, suite.IdentityService.LogInCalls)
}

func (suite *testSuite) TestRateLimited() {
	suite.RateLimiter.IsAllowed = false

	rw := suite.post(`{"identifier":"john","password":"Str0ng!ok"}`)

	assert := suite.Require()
	assert.Equal(http.StatusTooManyRequests, rw.Code)
	assert.Empty(suite.IdentityService.LogInCalls)
}

func (suite *testSuite) TestServiceError() {
	suite.IdentityService.Err = &identity.ServiceError{Code: 100, Message: "XMLHttpRequest failed"}

	rw := suite.post(`{"identifier":"john","password":"Str0ng!ok"}`)

	assert := suite.Require()
	assert.Equal(http.StatusBadGateway, rw.Code)
	assert.JSONEq(`{"error":"XMLHttpRequest failed"}`, rw.Body.String())
}

func (suite *testSuite) TestInvalidJSON() {
	rw := suite.post(`not json`)

	suite.Require().Equal(http.StatusBadRequest, rw.Code)
}
