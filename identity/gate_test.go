package identity

import (
	"context"
	"testing"
	"time"

	"restaurant-foh/internal/testdb"
	"restaurant-foh/models"
)

// deferredProvider only reports auth state when told to.
type deferredProvider struct {
	cb           func(*models.User)
	unsubscribed bool
}

func (p *deferredProvider) OnAuthStateChanged(cb func(*models.User)) func() {
	p.cb = cb
	return func() { p.unsubscribed = true }
}

func (p *deferredProvider) SignUp(context.Context, SignUpInput) (*models.User, error) {
	return nil, nil
}

func (p *deferredProvider) SignIn(context.Context, string, string) (*models.User, error) {
	return nil, nil
}

func (p *deferredProvider) SignOut(context.Context) error { return nil }

func TestGateLoadingThenSettled(t *testing.T) {
	p := &deferredProvider{}
	g := NewGate(p)

	if st := g.State(); !st.Loading || st.IsAuthenticated {
		t.Fatalf("initial state = %+v, want loading", st)
	}
	if d := Guard(g.State(), ResourceKitchen); d != Pending {
		t.Errorf("Guard() while loading = %v, want pending", d)
	}

	p.cb(nil)
	if d := Guard(g.State(), ResourceKitchen); d != RedirectLogin {
		t.Errorf("Guard() signed out = %v, want redirect_login", d)
	}

	p.cb(&models.User{ID: "u1", Role: models.RoleReception})
	if d := Guard(g.State(), ResourceKitchen); d != Forbidden {
		t.Errorf("Guard() wrong role = %v, want forbidden", d)
	}
	if d := Guard(g.State(), ResourceReception); d != Allow {
		t.Errorf("Guard() right role = %v, want allow", d)
	}
	if d := Guard(g.State(), ""); d != Allow {
		t.Errorf("Guard() no resource = %v, want allow", d)
	}

	g.Close()
	if !p.unsubscribed {
		t.Error("Close() should unregister from the provider")
	}
}

func TestGateFollowsSession(t *testing.T) {
	ctx := context.Background()
	svc := NewService(testdb.Open(t), []byte("test-secret"), time.Hour)
	session := NewSession(svc)
	g := NewGate(session)
	defer g.Close()

	var changes []State
	g.OnChange(func(st State) { changes = append(changes, st) })

	if st := g.State(); st.Loading || st.IsAuthenticated {
		t.Fatalf("state after subscribe = %+v, want settled and signed out", st)
	}

	user, err := session.SignUp(ctx, SignUpInput{Name: "Ola", Email: "ola@example.com", Password: "secret1", Role: models.RoleOwner})
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if st := g.State(); !st.IsAuthenticated || st.CurrentUser.ID != user.ID {
		t.Errorf("state after sign-up = %+v", st)
	}
	if session.Token() == "" {
		t.Error("session should hold a token")
	}

	if err := session.SignOut(ctx); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
	if _, err := session.SignIn(ctx, "ola@example.com", "bad"); err == nil {
		t.Error("SignIn() with a bad password should fail")
	}
	if st := g.State(); st.IsAuthenticated {
		t.Error("failed sign-in must not authenticate")
	}

	if len(changes) != 2 {
		t.Errorf("len(changes) = %d, want 2", len(changes))
	}
}
