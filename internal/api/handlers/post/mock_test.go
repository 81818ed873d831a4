package post

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Scribe/internal/api/middleware"
	"Scribe/internal/core/posts"
	"Scribe/internal/core/users"

	"github.com/stretchr/testify/require"
)

// mockPostService implements posts.Service for testing
type mockPostService struct {
	createFunc func(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error)
	listFunc   func(ctx context.Context, req posts.ListPostsRequest) ([]*posts.Post, error)
	updateFunc func(ctx context.Context, req posts.UpdatePostRequest) (*posts.PostWithAuthors, error)
}

func (m *mockPostService) CreatePost(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &posts.Post{ID: 1, Text: *req.Text, Tags: req.Tags}, nil
}

func (m *mockPostService) ListAuthorPosts(ctx context.Context, req posts.ListPostsRequest) ([]*posts.Post, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, req)
	}
	return nil, nil
}

func (m *mockPostService) UpdatePost(ctx context.Context, req posts.UpdatePostRequest) (*posts.PostWithAuthors, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, req)
	}
	return nil, posts.ErrPostNotFound
}

var testUser = &users.User{ID: 1, Username: "santiago"}

func withUser(r *http.Request, u *users.User) *http.Request {
	return r.WithContext(middleware.SetTestUser(r.Context(), u))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}
