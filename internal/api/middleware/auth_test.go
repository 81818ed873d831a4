package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Scribe/internal/auth"
	"Scribe/internal/core/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("middleware-test-secret")

// fakeUsers is a test double for UserLookup
type fakeUsers struct {
	users map[int64]*users.User
	err   error
}

func (f *fakeUsers) GetUserByID(ctx context.Context, id int64) (*users.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return u, nil
}

func newTestMiddleware(lookup UserLookup) *AuthMiddleware {
	return NewAuthMiddleware(auth.NewTokenManager(testSecret, ""), lookup)
}

func issue(t *testing.T, userID int64) string {
	t.Helper()
	token, err := auth.NewTokenManager(testSecret, "").Issue(userID, time.Hour)
	require.NoError(t, err)
	return token
}

func serve(m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, *users.User, bool) {
	var seen *users.User
	called := false
	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		seen = GetUser(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w, seen, called
}

func TestRequireAuth_ValidToken(t *testing.T) {
	alice := &users.User{ID: 1, Username: "alice"}
	m := newTestMiddleware(&fakeUsers{users: map[int64]*users.User{1: alice}})

	w, seen, called := serve(m, "Bearer "+issue(t, 1))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, alice, seen)
}

func TestRequireAuth_Rejections(t *testing.T) {
	m := newTestMiddleware(&fakeUsers{users: map[int64]*users.User{1: {ID: 1, Username: "alice"}}})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not-a-jwt"},
		{"unknown user", "Bearer " + issue(t, 99)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, called := serve(m, tt.header)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestRequireAuth_LookupFailure(t *testing.T) {
	m := newTestMiddleware(&fakeUsers{err: errors.New("connection reset")})

	w, _, called := serve(m, "Bearer "+issue(t, 1))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUser_NotAuthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetUser(req))
	assert.Nil(t, GetJWTClaims(req))
}

func TestSetTestUser(t *testing.T) {
	u := &users.User{ID: 5, Username: "eve"}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(SetTestUser(req.Context(), u))
	assert.Equal(t, u, GetUser(req))
}
