package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/stormapp/canteen-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubAuthRepo struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
	nextID  int
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("user_%03d", r.nextID)
	r.byEmail[clone.Email] = &clone
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubAuthRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubAuthRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

type stubTokenStore struct {
	tokens  map[string]string
	lastTTL time.Duration
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{tokens: make(map[string]string)}
}

func (s *stubTokenStore) Save(_ context.Context, token, userID string, ttl time.Duration) error {
	s.tokens[token] = userID
	s.lastTTL = ttl
	return nil
}

func (s *stubTokenStore) Lookup(_ context.Context, token string) (string, error) {
	userID, ok := s.tokens[token]
	if !ok {
		return "", domain.ErrResetTokenInvalid
	}
	return userID, nil
}

func (s *stubTokenStore) Delete(_ context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

const testSecret = "test-secret"

func newTestAuthService(repo *stubAuthRepo, tokens *stubTokenStore) *AuthService {
	return NewAuthService(repo, tokens, testSecret, time.Hour, discardLogger)
}

// ---------------------------------------------------------------------------
// Signup tests
// ---------------------------------------------------------------------------

func TestAuthService_Signup_HashesPasswordAndDefaultsRole(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo, newStubTokenStore())

	user, err := svc.Signup(context.Background(), " alice@example.com ", " Alice ", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "alice@example.com" || user.Name != "Alice" {
		t.Errorf("email and name must be trimmed, got %q / %q", user.Email, user.Name)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("self-registered accounts must get the user role, got %q", user.Role)
	}
	if user.PasswordHash == "hunter22" {
		t.Error("password must not be stored in the clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")) != nil {
		t.Error("stored hash must verify against the original password")
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo, newStubTokenStore())

	if _, err := svc.Signup(context.Background(), "a@example.com", "A", "pw123456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.Signup(context.Background(), "a@example.com", "A again", "pw123456")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Signup_RejectsBlankFields(t *testing.T) {
	svc := newTestAuthService(newStubAuthRepo(), newStubTokenStore())

	for _, tc := range []struct{ email, name, password string }{
		{"", "A", "pw"},
		{"a@example.com", "  ", "pw"},
		{"a@example.com", "A", ""},
	} {
		if _, err := svc.Signup(context.Background(), tc.email, tc.name, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("signup(%q, %q, %q): expected ErrInvalidCredentials, got %v", tc.email, tc.name, tc.password, err)
		}
	}
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestAuthService_Login_ReturnsSignedToken(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo, newStubTokenStore())

	created, _ := svc.Signup(context.Background(), "alice@example.com", "Alice", "hunter22")

	token, user, err := svc.Login(context.Background(), "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("expected the stored user, got %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token must verify against the server secret: %v", err)
	}
	if claims["userId"] != created.ID {
		t.Errorf("userId claim wrong: %v", claims["userId"])
	}
	if claims["role"] != domain.RoleUser {
		t.Errorf("role claim wrong: %v", claims["role"])
	}
	if claims["email"] != "alice@example.com" || claims["name"] != "Alice" {
		t.Errorf("identity claims wrong: %v / %v", claims["email"], claims["name"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("token must carry an expiry")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo, newStubTokenStore())

	_, _ = svc.Signup(context.Background(), "alice@example.com", "Alice", "hunter22")

	_, _, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailIndistinguishable(t *testing.T) {
	svc := newTestAuthService(newStubAuthRepo(), newStubTokenStore())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "pw")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("unknown accounts must fail the same way as bad passwords, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Password reset tests
// ---------------------------------------------------------------------------

func TestAuthService_ForgotPassword_IssuesShortLivedToken(t *testing.T) {
	repo := newStubAuthRepo()
	tokens := newStubTokenStore()
	svc := newTestAuthService(repo, tokens)

	created, _ := svc.Signup(context.Background(), "alice@example.com", "Alice", "hunter22")

	if err := svc.ForgotPassword(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens.tokens) != 1 {
		t.Fatalf("expected 1 stored token, got %d", len(tokens.tokens))
	}
	for _, userID := range tokens.tokens {
		if userID != created.ID {
			t.Errorf("token must map to the account, got %q", userID)
		}
	}
	if tokens.lastTTL != 15*time.Minute {
		t.Errorf("expected 15 minute TTL, got %v", tokens.lastTTL)
	}
}

func TestAuthService_ForgotPassword_SilentForUnknownEmail(t *testing.T) {
	tokens := newStubTokenStore()
	svc := newTestAuthService(newStubAuthRepo(), tokens)

	if err := svc.ForgotPassword(context.Background(), "nobody@example.com"); err != nil {
		t.Errorf("unknown accounts must not be distinguishable, got %v", err)
	}
	if len(tokens.tokens) != 0 {
		t.Error("no token must be issued for unknown accounts")
	}
}

func TestAuthService_ResetPassword_ConsumesToken(t *testing.T) {
	repo := newStubAuthRepo()
	tokens := newStubTokenStore()
	svc := newTestAuthService(repo, tokens)

	created, _ := svc.Signup(context.Background(), "alice@example.com", "Alice", "hunter22")
	tokens.tokens["tok_1"] = created.ID

	if err := svc.ResetPassword(context.Background(), "tok_1", "newpassword"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "newpassword"); err != nil {
		t.Errorf("new password must work: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice@example.com", "hunter22"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("old password must stop working, got %v", err)
	}
	if err := svc.ResetPassword(context.Background(), "tok_1", "again"); !errors.Is(err, domain.ErrResetTokenInvalid) {
		t.Errorf("a consumed token must not be reusable, got %v", err)
	}
}

func TestAuthService_ResetPassword_UnknownToken(t *testing.T) {
	svc := newTestAuthService(newStubAuthRepo(), newStubTokenStore())

	if err := svc.ResetPassword(context.Background(), "bogus", "pw"); !errors.Is(err, domain.ErrResetTokenInvalid) {
		t.Errorf("expected ErrResetTokenInvalid, got %v", err)
	}
}
