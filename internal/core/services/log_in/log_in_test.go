package login

import (
	"context"
	"letsconnect/internal/core/domain/credentials"
	"letsconnect/internal/core/domain/identity"
	"letsconnect/internal/core/domain/logging"
	"letsconnect/internal/core/domain/navigation"
	"letsconnect/internal/core/services"
	"testing"

	"github.com/stretchr/testify/suite"
)

const (
	USERNAME = identity.Username("john")
	PASSWORD = credentials.RawPassword("Str0ng!ok")
)

type testSuite struct {
	suite.Suite
	Logger          *logging.FakeLogger
	IdentityService *identity.FakeService
	Service         services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.IdentityService = identity.NewFakeService()
	suite.Service = New(suite.Logger, suite.IdentityService)

	_, err := suite.IdentityService.SignUp(context.Background(), identity.SignUpInput{
		Username:   USERNAME,
		Password:   PASSWORD,
		Identifier: credentials.ClassifyIdentifier("john@example.com"),
	})
	suite.Require().Nil(err)
}

func TestLogInService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccessNavigatesHome() {
	result, err := suite.Service.Run(context.Background(), Input{Identifier: string(USERNAME), Password: PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(USERNAME, result.Session.User.Username)
	assert.NotEmpty(result.Session.Token)
	assert.Equal(navigation.Home, result.Next)
	assert.True(suite.Logger.Has(logging.INFO, "User has logged in."))
}

func (suite *testSuite) TestInputIsPassedThroughUnchanged() {
	_, err := suite.Service.Run(context.Background(), Input{Identifier: " John@Example.com ", Password: "weak"})

	assert := suite.Require()
	assert.ErrorIs(err, identity.ErrInvalidCredentials)
	assert.Equal([]string{" John@Example.com "}, suite.IdentityService.LogInCalls)
}

func (suite *testSuite) TestWeakPasswordIsNotCheckedOnLogIn() {
	ctx := context.Background()
	_, err := suite.IdentityService.SignUp(ctx, identity.SignUpInput{
		Username:   "legacy",
		Password:   "weak",
		Identifier: credentials.ClassifyIdentifier("5551234567"),
	})
	suite.Require().Nil(err)

	result, err := suite.Service.Run(ctx, Input{Identifier: "legacy", Password: "weak"})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(navigation.Home, result.Next)
}

func (suite *testSuite) TestInvalidPassword() {
	result, err := suite.Service.Run(context.Background(), Input{Identifier: string(USERNAME), Password: "wrong"})

	assert := suite.Require()
	assert.ErrorIs(err, identity.ErrInvalidCredentials)
	assert.Equal(navigation.None, result.Next)
	assert.True(suite.Logger.Has(logging.INFO, "Invalid credentials."))
}

func (suite *testSuite) TestServiceError() {
	suite.IdentityService.Err = &identity.ServiceError{Code: 100, Message: "connection failed"}

	_, err := suite.Service.Run(context.Background(), Input{Identifier: string(USERNAME), Password: PASSWORD})

	assert := suite.Require()
	var serviceErr *identity.ServiceError
	assert.ErrorAs(err, &serviceErr)
	assert.Equal("connection failed", serviceErr.Message)
	assert.True(suite.Logger.Has(logging.ERROR, "Could not log in user."))
}
