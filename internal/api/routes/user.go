package routes

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Scribe/internal/api/middleware"
	"Scribe/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// UserHandler handles user lookup endpoints
type UserHandler struct {
	userService users.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService users.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// RegisterUserRoutes registers the authenticated user lookup
func RegisterUserRoutes(r chi.Router, service users.UserService, authMiddleware *middleware.AuthMiddleware) {
	h := NewUserHandler(service)
	r.With(authMiddleware.RequireAuth).Get("/users/{username}", h.GetUser)
}

// GetUser handles GET /users/{username}
// Clients use it to resolve the integer IDs that post endpoints take.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUserByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		var invalid *users.InvalidUsernameError
		if errors.Is(err, users.ErrUserNotFound) || errors.As(err, &invalid) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "user not found"})
			return
		}
		log.Printf("Unexpected error looking up user: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "An internal error occurred"})
		return
	}

	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode user response: %v", err)
	}
}
