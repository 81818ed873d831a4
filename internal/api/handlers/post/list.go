package post

import (
	"net/http"
	"strconv"
	"strings"

	"Scribe/internal/api/middleware"
	"Scribe/internal/core/posts"
)

// ListHandler handles listing posts by author
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{
		service: service,
	}
}

// ListResponse is the body of GET /posts
type ListResponse struct {
	Posts []posts.PostView `json:"posts"`
}

// HandleList handles GET /posts?authorIds=1,2&sortBy=likes&direction=desc
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUser(r) == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	query := r.URL.Query()

	raw := query.Get("authorIds")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "authorIds is required")
		return
	}

	authorIDs, err := parseAuthorIDs(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "author ID must be an integer")
		return
	}

	sortBy, err := posts.ParseSortField(query.Get("sortBy"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	direction, err := posts.ParseSortDirection(query.Get("direction"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	result, err := h.service.ListAuthorPosts(r.Context(), posts.ListPostsRequest{
		AuthorIDs: authorIDs,
		SortBy:    sortBy,
		Direction: direction,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	views := make([]posts.PostView, 0, len(result))
	for _, p := range result {
		views = append(views, p.ToView())
	}

	writeJSON(w, ListResponse{Posts: views})
}

// parseAuthorIDs splits a comma-separated list of non-negative integers.
// Spaces around each ID are ignored; order and duplicates are kept.
func parseAuthorIDs(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if !isDigits(part) {
			return nil, strconv.ErrSyntax
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
