package post

import (
	"encoding/json"
	"errors"
	"net/http"

	"Scribe/internal/api/middleware"
	"Scribe/internal/core/posts"
)

// maxBodyBytes caps request bodies for post writes
const maxBodyBytes = 1 << 20

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{
		service: service,
	}
}

// HandleCreate handles POST /posts
// The authenticated user becomes the sole author of the new post.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req posts.CreatePostRequest
	if !decodeBody(w, r, &req) {
		return
	}

	// Author always comes from the authenticated user
	req.AuthorID = user.ID

	post, err := h.service.CreatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, post.ToView())
}

// decodeBody reads a size-limited JSON body into dst, writing the error response on failure
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large (max 1MB)")
			return false
		}
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
