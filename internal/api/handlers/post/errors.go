package post

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Scribe/internal/core/posts"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: message}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// writeJSON writes a 200 response with the given body
func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers already sent
		log.Printf("Failed to encode post response: %v", err)
	}
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var valErr *posts.ValidationError

	switch {
	case errors.As(err, &valErr):
		writeError(w, http.StatusBadRequest, valErr.Message)

	case errors.Is(err, posts.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "The post ID does not exist")

	// 401 rather than 403 is what existing clients expect
	case errors.Is(err, posts.ErrNotAuthor):
		writeError(w, http.StatusUnauthorized, "You do not have permission to update the post")

	case errors.Is(err, posts.ErrEmptyText):
		writeError(w, http.StatusUnprocessableEntity, "New text of the post must be non-empty")

	case errors.Is(err, posts.ErrAuthorNotFound):
		writeError(w, http.StatusBadRequest, "author ID does not exist")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		writeError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
