package auth

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/ashwinyue/mindwell/internal/model"
)

type mockAuthStore struct {
	users  map[string]*model.User
	tokens map[string]*model.AuthToken
}

func newMockAuthStore() *mockAuthStore {
	return &mockAuthStore{
		users:  make(map[string]*model.User),
		tokens: make(map[string]*model.AuthToken),
	}
}

func (m *mockAuthStore) CreateUser(user *model.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockAuthStore) GetUserByID(id string) (*model.User, error) {
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAuthStore) GetUserByEmail(email string) (*model.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAuthStore) UpdateUser(user *model.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockAuthStore) CreateToken(token *model.AuthToken) error {
	m.tokens[token.Token] = token
	return nil
}

func (m *mockAuthStore) GetTokenByValue(token string) (*model.AuthToken, error) {
	if record, ok := m.tokens[token]; ok {
		return record, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAuthStore) RevokeToken(id string) error {
	for _, record := range m.tokens {
		if record.ID == id {
			record.IsRevoked = true
		}
	}
	return nil
}

func (m *mockAuthStore) RevokeAllUserTokens(userID string) error {
	for _, record := range m.tokens {
		if record.UserID == userID {
			record.IsRevoked = true
		}
	}
	return nil
}

func register(t *testing.T, svc *Service) *model.User {
	t.Helper()
	user, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return user
}

func TestRegister(t *testing.T) {
	store := newMockAuthStore()
	svc := NewService(store)
	ctx := context.Background()

	user := register(t, svc)
	if user.PasswordHash == "secret123" || user.PasswordHash == "" {
		t.Error("password should be stored hashed")
	}
	if !user.IsActive {
		t.Error("new users should be active")
	}

	if _, err := svc.Register(ctx, RegisterInput{
		Name: "Alice Again", Email: "Alice@Example.com", Password: "secret123",
	}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate email: got %v", err)
	}

	if _, err := svc.Register(ctx, RegisterInput{
		Name: "Bob", Email: "bob@example.com", Password: "short",
	}); !errors.Is(err, ErrValidation) {
		t.Errorf("short password: got %v", err)
	}
}

func TestLogin(t *testing.T) {
	store := newMockAuthStore()
	svc := NewService(store)
	ctx := context.Background()
	user := register(t, svc)

	got, pair, err := svc.Login(ctx, "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("logged in as %q, want %q", got.ID, user.ID)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" || pair.AccessToken == pair.RefreshToken {
		t.Error("expected a distinct access/refresh pair")
	}
	if len(store.tokens) != 2 {
		t.Errorf("expected 2 stored token records, got %d", len(store.tokens))
	}

	if _, _, err := svc.Login(ctx, "alice@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v", err)
	}

	user.IsActive = false
	if _, _, err := svc.Login(ctx, "alice@example.com", "secret123"); !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("disabled account: got %v", err)
	}
}

func TestValidateToken(t *testing.T) {
	store := newMockAuthStore()
	svc := NewService(store)
	ctx := context.Background()
	user := register(t, svc)

	_, pair, err := svc.Login(ctx, "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	got, err := svc.ValidateToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("validated as %q, want %q", got.ID, user.ID)
	}

	if _, err := svc.ValidateToken(ctx, "not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token: got %v", err)
	}

	if err := svc.Logout(ctx, pair.AccessToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.ValidateToken(ctx, pair.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("revoked token: got %v", err)
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	store := newMockAuthStore()
	svc := NewService(store)
	ctx := context.Background()
	register(t, svc)

	_, pair, err := svc.Login(ctx, "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	// An access token must not pass as a refresh token.
	if _, err := svc.RefreshToken(ctx, pair.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("access token as refresh: got %v", err)
	}

	fresh, err := svc.RefreshToken(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if fresh.AccessToken == "" || fresh.RefreshToken == "" {
		t.Fatal("expected a fresh pair")
	}

	// The consumed refresh token is revoked.
	if _, err := svc.RefreshToken(ctx, pair.RefreshToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("reused refresh token: got %v", err)
	}
	if _, err := svc.ValidateToken(ctx, fresh.AccessToken); err != nil {
		t.Errorf("fresh access token rejected: %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	store := newMockAuthStore()
	svc := NewService(store)
	ctx := context.Background()
	user := register(t, svc)

	_, pair, err := svc.Login(ctx, "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.ChangePassword(ctx, user.ID, "wrong", "newsecret"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("wrong old password: got %v", err)
	}
	if err := svc.ChangePassword(ctx, user.ID, "secret123", "short"); !errors.Is(err, ErrValidation) {
		t.Errorf("short new password: got %v", err)
	}

	if err := svc.ChangePassword(ctx, user.ID, "secret123", "newsecret"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	// Every session is revoked after the change.
	if _, err := svc.ValidateToken(ctx, pair.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("old session survived password change: %v", err)
	}

	if _, _, err := svc.Login(ctx, "alice@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("old password still accepted: %v", err)
	}
	if _, _, err := svc.Login(ctx, "alice@example.com", "newsecret"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}
}
