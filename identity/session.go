package identity

import (
	"context"
	"sync"

	"restaurant-foh/models"
)

// Session is a Provider for a single terminal: at most one user is signed in
// at a time and every change is pushed to the registered callbacks.
type Session struct {
	svc *Service

	mu        sync.Mutex
	user      *models.User
	token     string
	callbacks map[int]func(*models.User)
	nextID    int
}

func NewSession(svc *Service) *Session {
	return &Session{svc: svc, callbacks: make(map[int]func(*models.User))}
}

// OnAuthStateChanged calls cb with the current user right away and again
// after every sign-in or sign-out.
func (s *Session) OnAuthStateChanged(cb func(*models.User)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.callbacks[id] = cb
	user := s.user
	s.mu.Unlock()

	cb(user)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.callbacks, id)
			s.mu.Unlock()
		})
	}
}

func (s *Session) SignUp(ctx context.Context, in SignUpInput) (*models.User, error) {
	user, token, err := s.svc.SignUp(ctx, in)
	if err != nil {
		return nil, err
	}
	s.setUser(user, token)
	return user, nil
}

func (s *Session) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	user, token, err := s.svc.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.setUser(user, token)
	return user, nil
}

func (s *Session) SignOut(ctx context.Context) error {
	s.setUser(nil, "")
	return nil
}

// Token is the bearer token of the signed-in user, if any.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) setUser(u *models.User, token string) {
	s.mu.Lock()
	s.user = u
	s.token = token
	cbs := make([]func(*models.User), 0, len(s.callbacks))
	for _, cb := range s.callbacks {
		cbs = append(cbs, cb)
	}
	s.mu.Unlock()

	for _, cb := range cbs {
		cb(u)
	}
}
