package posts

import "context"

// Service defines the business logic interface for posts
type Service interface {
	// CreatePost stores a new post authored by req.AuthorID
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// ListAuthorPosts returns the deduplicated, sorted posts of the requested authors.
	// Unknown author IDs are skipped without error.
	ListAuthorPosts(ctx context.Context, req ListPostsRequest) ([]*Post, error)

	// UpdatePost changes text, tags and/or the author set of a post.
	// Only current authors may update a post.
	UpdatePost(ctx context.Context, req UpdatePostRequest) (*PostWithAuthors, error)
}

// Repository defines the data access interface for posts and authorship
type Repository interface {
	// Create inserts the post and links it to authorID in one transaction.
	// post.ID and the counter defaults are populated on success.
	Create(ctx context.Context, post *Post, authorID int64) error

	// GetByID returns ErrPostNotFound when the post does not exist
	GetByID(ctx context.Context, id int64) (*Post, error)

	// ListByAuthor returns every post linked to authorID, ordered by post ID
	ListByAuthor(ctx context.Context, authorID int64) ([]*Post, error)

	// GetAuthorIDs returns the author IDs of a post in ascending order
	GetAuthorIDs(ctx context.Context, postID int64) ([]int64, error)

	// Update applies changes atomically while holding a row lock on the post.
	// Author set changes are computed with Reconcile against the locked state.
	// Returns ErrPostNotFound or ErrAuthorNotFound (unknown user in the desired set).
	Update(ctx context.Context, postID int64, changes PostChanges) (*Post, error)
}
