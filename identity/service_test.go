package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-foh/internal/testdb"
	"restaurant-foh/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(testdb.Open(t), []byte("test-secret"), time.Hour)
}

func TestSignUpAndSignIn(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	user, token, err := svc.SignUp(ctx, SignUpInput{Name: "Kim", Email: "Kim@Example.com ", Password: "secret1", Role: models.RoleKitchen})
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if user.Email != "kim@example.com" {
		t.Errorf("Email = %q, want normalised", user.Email)
	}
	if user.PasswordHash == "secret1" {
		t.Error("password stored in clear text")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != user.ID || claims.Role != models.RoleKitchen {
		t.Errorf("claims = %+v", claims)
	}

	if _, _, err := svc.SignUp(ctx, SignUpInput{Name: "Kim", Email: "kim@example.com", Password: "other12", Role: models.RoleOwner}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate SignUp() error = %v, want ErrEmailTaken", err)
	}

	if _, _, err := svc.SignIn(ctx, "kim@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("SignIn() bad password error = %v", err)
	}
	if _, _, err := svc.SignIn(ctx, "nobody@example.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("SignIn() unknown user error = %v", err)
	}
	signedIn, _, err := svc.SignIn(ctx, "KIM@example.com", "secret1")
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if signedIn.ID != user.ID {
		t.Errorf("SignIn() user = %s, want %s", signedIn.ID, user.ID)
	}

	loaded, err := svc.User(ctx, user.ID)
	if err != nil || loaded.Name != "Kim" {
		t.Errorf("User() = %v, %v", loaded, err)
	}
	if _, err := svc.User(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("User() missing error = %v", err)
	}
}

func TestSignUpRejectsUnknownRole(t *testing.T) {
	svc := newTestService(t)
	_, _, err := svc.SignUp(context.Background(), SignUpInput{Name: "X", Email: "x@example.com", Password: "secret1", Role: "chef"})
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("SignUp() error = %v, want ErrInvalidRole", err)
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	svc := newTestService(t)
	user := &models.User{ID: "u1", Email: "a@example.com", Role: models.RoleOwner}

	other := NewService(nil, []byte("another-secret"), time.Hour)
	foreign, _ := other.GenerateToken(user)
	if _, err := svc.Verify(foreign); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() foreign token error = %v", err)
	}

	expired := NewService(nil, []byte("test-secret"), time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, _ := expired.GenerateToken(user)
	if _, err := svc.Verify(stale); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() expired token error = %v", err)
	}

	if _, err := svc.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() garbage error = %v", err)
	}
}
