package identity

import (
	"context"
	"fmt"
	c "letsconnect/internal/core/domain/common"
	"letsconnect/internal/core/domain/credentials"
	"sync"
	"time"
)

type fakeAccount struct {
	user     User
	password credentials.RawPassword
}

// FakeService keeps accounts in memory. Log in matches the identifier
// against usernames only, like the hosted service does.
type FakeService struct {
	Err         error
	SignUpCalls []SignUpInput
	LogInCalls  []string
	Now         func() time.Time

	accounts map[Username]fakeAccount
	sessions map[SessionToken]Username
	counter  int
	lock     sync.Mutex
}

func NewFakeService() *FakeService {
	return &FakeService{
		Now:      func() time.Time { return time.Now().UTC() },
		accounts: make(map[Username]fakeAccount),
		sessions: make(map[SessionToken]Username),
	}
}

func (s *FakeService) LogIn(
	ctx context.Context,
	identifier string,
	password credentials.RawPassword,
) (session Session, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.LogInCalls = append(s.LogInCalls, identifier)
	if s.Err != nil {
		return session, s.Err
	}
	account, ok := s.accounts[Username(identifier)]
	if !ok || account.password != password {
		return session, ErrInvalidCredentials
	}
	return s.openSession(account.user), nil
}

func (s *FakeService) SignUp(ctx context.Context, input SignUpInput) (session Session, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.SignUpCalls = append(s.SignUpCalls, input)
	if s.Err != nil {
		return session, s.Err
	}
	if _, ok := s.accounts[input.Username]; ok {
		return session, ErrUsernameTaken
	}
	if input.Identifier.Kind == credentials.Email {
		for _, account := range s.accounts {
			if account.user.Email.IsPresent && account.user.Email.Value == input.Identifier.Value {
				return session, ErrEmailTaken
			}
		}
	}

	s.counter++
	u := User{
		ID:        UserID(fmt.Sprintf("user%d", s.counter)),
		Username:  input.Username,
		CreatedAt: s.Now(),
	}
	switch input.Identifier.Kind {
	case credentials.Email:
		u.Email = c.Some(input.Identifier.Value)
	case credentials.Mobile:
		u.MobileNumber = c.Some(input.Identifier.Value)
	}
	s.accounts[input.Username] = fakeAccount{user: u, password: input.Password}
	return s.openSession(u), nil
}

func (s *FakeService) CurrentUser(ctx context.Context, token SessionToken) (u User, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.Err != nil {
		return u, s.Err
	}
	username, ok := s.sessions[token]
	if !ok {
		return u, ErrInvalidSessionToken
	}
	return s.accounts[username].user, nil
}

func (s *FakeService) SignUpCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.SignUpCalls)
}

func (s *FakeService) openSession(u User) Session {
	s.counter++
	token := SessionToken(fmt.Sprintf("r:session%d", s.counter))
	s.sessions[token] = u.Username
	return Session{User: u, Token: token}
}
