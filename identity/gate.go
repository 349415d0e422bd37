package identity

import (
	"context"
	"errors"
	"slices"
	"sync"

	"restaurant-foh/models"
)

// Provider is the contract of an identity backend as seen by one client.
type Provider interface {
	OnAuthStateChanged(func(*models.User)) (unsubscribe func())
	SignUp(ctx context.Context, in SignUpInput) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (*models.User, error)
	SignOut(ctx context.Context) error
}

// State is what route guards read.
type State struct {
	CurrentUser     *models.User
	IsAuthenticated bool
	Loading         bool
}

// Gate follows a Provider's auth state from creation until Close.
type Gate struct {
	mu          sync.RWMutex
	state       State
	unsubscribe func()
	listeners   []func(State)
}

func NewGate(p Provider) *Gate {
	g := &Gate{state: State{Loading: true}}
	g.unsubscribe = p.OnAuthStateChanged(g.set)
	return g
}

func (g *Gate) set(u *models.User) {
	g.mu.Lock()
	g.state = State{CurrentUser: u, IsAuthenticated: u != nil}
	st := g.state
	listeners := slices.Clone(g.listeners)
	g.mu.Unlock()

	for _, fn := range listeners {
		fn(st)
	}
}

func (g *Gate) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// OnChange registers fn to be told about every auth state change.
func (g *Gate) OnChange(fn func(State)) {
	g.mu.Lock()
	g.listeners = append(g.listeners, fn)
	g.mu.Unlock()
}

// Close stops following the provider.
func (g *Gate) Close() {
	g.mu.Lock()
	unsubscribe := g.unsubscribe
	g.unsubscribe = nil
	g.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

// Decision is the outcome of guarding a route.
type Decision int

const (
	Pending Decision = iota
	RedirectLogin
	Forbidden
	Allow
)

func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case RedirectLogin:
		return "redirect_login"
	case Forbidden:
		return "forbidden"
	case Allow:
		return "allow"
	}
	return "unknown"
}

// Guard decides whether state may reach resource. An empty resource only
// requires authentication.
func Guard(st State, resource Resource) Decision {
	if st.Loading {
		return Pending
	}
	if !st.IsAuthenticated || st.CurrentUser == nil {
		return RedirectLogin
	}
	if resource == "" {
		return Allow
	}
	sub := Subject{UserID: st.CurrentUser.ID, Email: st.CurrentUser.Email, Role: st.CurrentUser.Role}
	err := Authorize(sub, resource)
	switch {
	case err == nil:
		return Allow
	case errors.Is(err, ErrUnauthenticated):
		return RedirectLogin
	default:
		return Forbidden
	}
}
