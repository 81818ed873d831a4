package posts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"Scribe/internal/core/users"
)

// userBatchSize bounds a single users.GetByIDs call
const userBatchSize = 1000

type postService struct {
	repo     Repository
	userRepo users.UserRepository
}

// NewPostService creates a new post service
func NewPostService(repo Repository, userRepo users.UserRepository) Service {
	return &postService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// CreatePost validates the request and stores the post with its creator as sole author
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	if req.Text == nil || *req.Text == "" {
		return nil, NewValidationError("text", "Must provide text for the new post")
	}
	if req.AuthorID <= 0 {
		return nil, NewValidationError("author", "author is required")
	}

	post := &Post{Text: *req.Text}
	if len(req.Tags) > 0 {
		post.Tags = req.Tags
	}

	if err := s.repo.Create(ctx, post, req.AuthorID); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	slog.Debug("post created",
		slog.Int64("post_id", post.ID),
		slog.Int64("author_id", req.AuthorID),
	)

	return post, nil
}

// ListAuthorPosts gathers posts of every existing requested author.
// A post shared by several requested authors is returned once, at the position
// it was first seen; the result is then stable-sorted.
func (s *postService) ListAuthorPosts(ctx context.Context, req ListPostsRequest) ([]*Post, error) {
	if len(req.AuthorIDs) == 0 {
		return nil, NewValidationError("authorIds", "authorIds is required")
	}

	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = SortByID
	}
	direction := req.Direction
	if direction == "" {
		direction = Ascending
	}

	existing, err := s.existingUsers(ctx, uniqueIDs(req.AuthorIDs))
	if err != nil {
		return nil, err
	}

	result := make([]*Post, 0)
	seenPosts := make(map[int64]struct{})
	fetched := make(map[int64]struct{})

	for _, authorID := range req.AuthorIDs {
		if _, ok := existing[authorID]; !ok {
			continue
		}
		// Repeated IDs in the request cannot contribute new posts
		if _, ok := fetched[authorID]; ok {
			continue
		}
		fetched[authorID] = struct{}{}

		authorPosts, err := s.repo.ListByAuthor(ctx, authorID)
		if err != nil {
			return nil, fmt.Errorf("failed to list posts for author %d: %w", authorID, err)
		}
		for _, p := range authorPosts {
			if _, ok := seenPosts[p.ID]; ok {
				continue
			}
			seenPosts[p.ID] = struct{}{}
			result = append(result, p)
		}
	}

	SortPosts(result, sortBy, direction)
	return result, nil
}

// existingUsers resolves which IDs belong to users, in batches
func (s *postService) existingUsers(ctx context.Context, ids []int64) (map[int64]*users.User, error) {
	found := make(map[int64]*users.User, len(ids))
	for start := 0; start < len(ids); start += userBatchSize {
		end := start + userBatchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch, err := s.userRepo.GetByIDs(ctx, ids[start:end])
		if err != nil {
			return nil, fmt.Errorf("failed to look up authors: %w", err)
		}
		for id, u := range batch {
			found[id] = u
		}
	}
	return found, nil
}

// UpdatePost checks existence and authorship, validates the new values, then
// applies author reconciliation and field changes in a single repository call.
func (s *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) (*PostWithAuthors, error) {
	if _, err := s.repo.GetByID(ctx, req.PostID); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post %d: %w", req.PostID, err)
	}

	currentAuthors, err := s.repo.GetAuthorIDs(ctx, req.PostID)
	if err != nil {
		return nil, fmt.Errorf("failed to get authors of post %d: %w", req.PostID, err)
	}
	if !containsID(currentAuthors, req.UserID) {
		return nil, ErrNotAuthor
	}

	// Reject before any write so a bad update leaves the post untouched
	if req.Text != nil && *req.Text == "" {
		return nil, ErrEmptyText
	}

	changes := PostChanges{Text: req.Text}
	if len(req.Tags) > 0 {
		changes.Tags = req.Tags
	}
	if req.AuthorIDs != nil {
		changes.ReplaceAuthors = true
		changes.DesiredAuthorIDs = uniqueIDs(*req.AuthorIDs)
	}

	updated, err := s.repo.Update(ctx, req.PostID, changes)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) || errors.Is(err, ErrAuthorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update post %d: %w", req.PostID, err)
	}

	authorIDs, err := s.repo.GetAuthorIDs(ctx, req.PostID)
	if err != nil {
		return nil, fmt.Errorf("failed to get authors of post %d: %w", req.PostID, err)
	}

	slog.Debug("post updated",
		slog.Int64("post_id", req.PostID),
		slog.Int64("user_id", req.UserID),
		slog.Bool("authors_replaced", changes.ReplaceAuthors),
	)

	return &PostWithAuthors{Post: updated, AuthorIDs: authorIDs}, nil
}
