package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ashwinyue/mindwell/internal/model"
	"github.com/ashwinyue/mindwell/internal/service"
	"github.com/ashwinyue/mindwell/internal/service/auth"
	"github.com/ashwinyue/mindwell/internal/testutil"
)

type memoryAuthStore struct {
	users  map[string]*model.User
	tokens map[string]*model.AuthToken
}

func newMemoryAuthStore() *memoryAuthStore {
	return &memoryAuthStore{
		users:  make(map[string]*model.User),
		tokens: make(map[string]*model.AuthToken),
	}
}

func (m *memoryAuthStore) CreateUser(user *model.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *memoryAuthStore) GetUserByID(id string) (*model.User, error) {
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryAuthStore) GetUserByEmail(email string) (*model.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryAuthStore) UpdateUser(user *model.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *memoryAuthStore) CreateToken(token *model.AuthToken) error {
	m.tokens[token.Token] = token
	return nil
}

func (m *memoryAuthStore) GetTokenByValue(token string) (*model.AuthToken, error) {
	if record, ok := m.tokens[token]; ok {
		return record, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryAuthStore) RevokeToken(id string) error {
	for _, record := range m.tokens {
		if record.ID == id {
			record.IsRevoked = true
		}
	}
	return nil
}

func (m *memoryAuthStore) RevokeAllUserTokens(userID string) error {
	for _, record := range m.tokens {
		if record.UserID == userID {
			record.IsRevoked = true
		}
	}
	return nil
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	authSvc := auth.NewService(newMemoryAuthStore())
	svc := &service.Services{Auth: authSvc}

	ctx := context.Background()
	if _, err := authSvc.Register(ctx, auth.RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, pair, err := authSvc.Login(ctx, "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	r := gin.New()
	r.Use(RequireAuth(svc))
	r.GET("/protected", func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	w := testutil.PerformJSON(t, r, http.MethodGet, "/protected", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no header: status %d, want 401", w.Code)
	}

	w = testutil.PerformJSON(t, r, http.MethodGet, "/protected", nil, map[string]string{
		"Authorization": "Token abc",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad scheme: status %d, want 401", w.Code)
	}

	w = testutil.PerformJSON(t, r, http.MethodGet, "/protected", nil, testutil.BearerHeader("bogus"))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status %d, want 401", w.Code)
	}

	w = testutil.PerformJSON(t, r, http.MethodGet, "/protected", nil, testutil.BearerHeader(pair.AccessToken))
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: status %d, want 200: %s", w.Code, w.Body.String())
	}
	var resp struct {
		UserID string `json:"user_id"`
	}
	testutil.DecodeBody(t, w, &resp)
	if resp.UserID == "" {
		t.Error("user_id should be set by the middleware")
	}

	// A revoked token stops working immediately.
	if err := authSvc.Logout(ctx, pair.AccessToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	w = testutil.PerformJSON(t, r, http.MethodGet, "/protected", nil, testutil.BearerHeader(pair.AccessToken))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("revoked token: status %d, want 401", w.Code)
	}
}
