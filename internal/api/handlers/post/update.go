package post

import (
	"net/http"
	"strconv"

	"Scribe/internal/api/middleware"
	"Scribe/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// UpdateHandler handles post update requests
type UpdateHandler struct {
	service posts.Service
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{
		service: service,
	}
}

// UpdateResponse is the body of PATCH /posts/{postId}
type UpdateResponse struct {
	Post posts.PostWithAuthorsView `json:"post"`
}

// HandleUpdate handles PATCH /posts/{postId}
//
// Request body: { "authorIds": [1, 2], "tags": ["a"], "text": "..." }, every field optional.
// Only a current author may update; authorIds replaces the whole author set.
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	// A path segment that is not a post ID cannot name an existing post
	postID, err := strconv.ParseInt(chi.URLParam(r, "postId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "The post ID does not exist")
		return
	}

	var req posts.UpdatePostRequest
	if !decodeBody(w, r, &req) {
		return
	}

	req.PostID = postID
	req.UserID = user.ID

	updated, err := h.service.UpdatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, UpdateResponse{Post: updated.ToView()})
}
