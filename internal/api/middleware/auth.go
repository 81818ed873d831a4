package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"Scribe/internal/auth"
	"Scribe/internal/core/users"
)

// Context keys for storing user information
type contextKey string

const (
	UserKey      contextKey = "user"
	JWTClaimsKey contextKey = "jwt_claims"
)

// TokenVerifier verifies a bearer token and returns its claims
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// UserLookup loads the user a token refers to
type UserLookup interface {
	GetUserByID(ctx context.Context, id int64) (*users.User, error)
}

// AuthMiddleware enforces bearer token authentication for protected routes
type AuthMiddleware struct {
	verifier TokenVerifier
	users    UserLookup
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(verifier TokenVerifier, users UserLookup) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		users:    users,
	}
}

// RequireAuth middleware ensures the caller presents a valid token for an existing user.
// If not authenticated, returns 401.
// If authenticated, injects the user and JWT claims into context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthError(w, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := m.verifier.Verify(token)
		if err != nil {
			log.Printf("[AUTH_FAILURE] type=verification_failed ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, "Invalid or expired token")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			writeAuthError(w, "Invalid user ID in token")
			return
		}

		user, err := m.users.GetUserByID(r.Context(), userID)
		if err != nil {
			if !errors.Is(err, users.ErrUserNotFound) {
				log.Printf("[AUTH_FAILURE] type=user_lookup ip=%s method=%s path=%s user_id=%d error=%v",
					r.RemoteAddr, r.Method, r.URL.Path, userID, err)
			}
			writeAuthError(w, "Unknown user")
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		ctx = context.WithValue(ctx, JWTClaimsKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUser extracts the authenticated user from the request context.
// Returns nil if not authenticated.
func GetUser(r *http.Request) *users.User {
	user, _ := r.Context().Value(UserKey).(*users.User)
	return user
}

// GetJWTClaims extracts the JWT claims from the request context
func GetJWTClaims(r *http.Request) *auth.Claims {
	claims, _ := r.Context().Value(JWTClaimsKey).(*auth.Claims)
	return claims
}

// SetTestUser sets the user in the context for testing purposes.
// This function should ONLY be used in tests to mock authenticated users.
func SetTestUser(ctx context.Context, user *users.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Printf("Failed to write auth error response: %v", err)
	}
}
