package parse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	c "letsconnect/internal/core/domain/common"
	"letsconnect/internal/core/domain/credentials"
	e "letsconnect/internal/core/domain/errors"
	"letsconnect/internal/core/domain/identity"
	"letsconnect/internal/core/domain/logging"
	"net/http"
	"net/url"
	"time"
)

// Parse server error codes, see https://docs.parseplatform.org/rest/guide/#error-codes
const (
	codeObjectNotFound      = 101
	codeUsernameTaken       = 202
	codeEmailTaken          = 203
	codeInvalidSessionToken = 209
)

type Config struct {
	ServerURL     url.URL
	ApplicationID string
	RESTAPIKey    string
	Timeout       time.Duration
}

// Client talks to a hosted Parse server over its REST API. Every request
// is attempted once.
type Client struct {
	log           logging.Logger
	httpClient    http.Client
	serverURL     url.URL
	applicationID string
	restAPIKey    string
}

func New(log logging.Logger, config Config) *Client {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Client{
		log:           log,
		httpClient:    http.Client{Timeout: config.Timeout},
		serverURL:     config.ServerURL,
		applicationID: config.ApplicationID,
		restAPIKey:    config.RESTAPIKey,
	}
}

type errorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type userResponse struct {
	ObjectID     string    `json:"objectId"`
	Username     string    `json:"username"`
	Email        *string   `json:"email"`
	MobileNumber *string   `json:"mobileNumber"`
	CreatedAt    time.Time `json:"createdAt"`
	SessionToken string    `json:"sessionToken"`
}

func (u userResponse) toDomainUser() (identity.User, error) {
	if u.ObjectID == "" {
		return identity.User{}, e.NewInvalidStateError("parse user has no objectId")
	}
	user := identity.User{
		ID:        identity.UserID(u.ObjectID),
		Username:  identity.Username(u.Username),
		CreatedAt: u.CreatedAt,
	}
	if u.Email != nil {
		user.Email = c.Some(*u.Email)
	}
	if u.MobileNumber != nil {
		user.MobileNumber = c.Some(*u.MobileNumber)
	}
	return user, nil
}

func (u userResponse) toDomainSession() (identity.Session, error) {
	user, err := u.toDomainUser()
	if err != nil {
		return identity.Session{}, err
	}
	if u.SessionToken == "" {
		return identity.Session{}, e.NewInvalidStateError("parse user %s has no session token", u.ObjectID)
	}
	return identity.Session{User: user, Token: identity.SessionToken(u.SessionToken)}, nil
}

// LogIn sends the identifier as the Parse username, unchanged.
func (cl *Client) LogIn(
	ctx context.Context,
	identifier string,
	password credentials.RawPassword,
) (session identity.Session, err error) {
	body := map[string]string{"username": identifier, "password": string(password)}
	resp := userResponse{}
	err = cl.do(ctx, http.MethodPost, cl.serverURL.JoinPath("login"), body, "", &resp)
	var parseErr *identity.ServiceError
	if errors.As(err, &parseErr) && parseErr.Code == codeObjectNotFound {
		return session, identity.ErrInvalidCredentials
	}
	if err != nil {
		return session, err
	}
	return resp.toDomainSession()
}

// SignUp stores the identifier under "email" or "mobileNumber" depending on
// how it was classified.
func (cl *Client) SignUp(ctx context.Context, input identity.SignUpInput) (session identity.Session, err error) {
	body := map[string]string{
		"username":                    string(input.Username),
		"password":                    string(input.Password),
		string(input.Identifier.Kind): input.Identifier.Value,
	}
	resp := userResponse{}
	err = cl.do(ctx, http.MethodPost, cl.serverURL.JoinPath("users"), body, "", &resp)
	var parseErr *identity.ServiceError
	if errors.As(err, &parseErr) {
		switch parseErr.Code {
		case codeUsernameTaken:
			return session, identity.ErrUsernameTaken
		case codeEmailTaken:
			return session, identity.ErrEmailTaken
		}
	}
	if err != nil {
		return session, err
	}

	// Sign up responds with objectId, createdAt and sessionToken only.
	resp.Username = string(input.Username)
	switch input.Identifier.Kind {
	case credentials.Email:
		resp.Email = &input.Identifier.Value
	case credentials.Mobile:
		resp.MobileNumber = &input.Identifier.Value
	}
	return resp.toDomainSession()
}

func (cl *Client) CurrentUser(ctx context.Context, token identity.SessionToken) (u identity.User, err error) {
	resp := userResponse{}
	err = cl.do(ctx, http.MethodGet, cl.serverURL.JoinPath("users", "me"), nil, token, &resp)
	var parseErr *identity.ServiceError
	if errors.As(err, &parseErr) && parseErr.Code == codeInvalidSessionToken {
		return u, identity.ErrInvalidSessionToken
	}
	if err != nil {
		return u, err
	}
	return resp.toDomainUser()
}

// Ping queries one object of className to check that the server is
// reachable and the keys are accepted.
func (cl *Client) Ping(ctx context.Context, className string) error {
	u := cl.serverURL.JoinPath("classes", className)
	u.RawQuery = url.Values{"limit": {"1"}}.Encode()

	resp := struct {
		Results []json.RawMessage `json:"results"`
	}{}
	if err := cl.do(ctx, http.MethodGet, u, nil, "", &resp); err != nil {
		cl.log.Error(ctx, "Parse query error.", logging.Entry("class", className), logging.Entry("err", err))
		return err
	}
	cl.log.Info(
		ctx,
		"Parse query results.",
		logging.Entry("class", className),
		logging.Entry("count", len(resp.Results)),
	)
	return nil
}

func (cl *Client) do(
	ctx context.Context,
	method string,
	u *url.URL,
	body interface{},
	token identity.SessionToken,
	result interface{},
) error {
	var payload io.Reader
	if body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
		payload = &buf
	}

	request, err := http.NewRequestWithContext(ctx, method, u.String(), payload)
	if err != nil {
		return err
	}
	request.Header.Set("X-Parse-Application-Id", cl.applicationID)
	request.Header.Set("X-Parse-REST-API-Key", cl.restAPIKey)
	request.Header.Set("X-Parse-Revocable-Session", "1")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("X-Parse-Session-Token", string(token))
	}

	response, err := cl.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		return decodeError(response)
	}
	return json.NewDecoder(response.Body).Decode(result)
}

func decodeError(response *http.Response) error {
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}
	parseErr := errorResponse{}
	if err := json.Unmarshal(raw, &parseErr); err != nil || parseErr.Error == "" {
		return &identity.ServiceError{
			Code:    response.StatusCode,
			Message: fmt.Sprintf("unexpected response: %s", string(raw)),
		}
	}
	return &identity.ServiceError{Code: parseErr.Code, Message: parseErr.Error}
}
