package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"Scribe/internal/core/posts"

	"github.com/lib/pq"
)

const postColumns = `p.id, p.text, p.tags, p.likes, p.reads, p.popularity, p.created_at, p.updated_at`

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*posts.Post, error) {
	var post posts.Post
	var tags pq.StringArray
	err := row.Scan(
		&post.ID, &post.Text, &tags,
		&post.Likes, &post.Reads, &post.Popularity,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		post.Tags = []string(tags)
	}
	return &post, nil
}

// nullableTags stores an empty tag list as NULL
func nullableTags(tags []string) any {
	if len(tags) == 0 {
		return nil
	}
	return pq.StringArray(tags)
}

// Create inserts the post and its first authorship row in one transaction
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post, authorID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer rollback(tx, slog.Int64("author_id", authorID))

	query := `
		INSERT INTO posts (text, tags)
		VALUES ($1, $2)
		RETURNING id, likes, reads, popularity, created_at, updated_at`

	err = tx.QueryRowContext(ctx, query, post.Text, nullableTags(post.Tags)).Scan(
		&post.ID, &post.Likes, &post.Reads, &post.Popularity, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO user_posts (user_id, post_id) VALUES ($1, $2)`,
		authorID, post.ID,
	); err != nil {
		if pqErrorCode(err) == pqForeignKeyViolation {
			return fmt.Errorf("%w: %d", posts.ErrAuthorNotFound, authorID)
		}
		return fmt.Errorf("failed to link post %d to author %d: %w", post.ID, authorID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit post creation: %w", err)
	}

	return nil
}

// GetByID retrieves a post by ID
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts p WHERE p.id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by ID: %w", err)
	}

	return post, nil
}

// ListByAuthor returns all posts linked to the author, ordered by post ID
func (r *postgresPostRepo) ListByAuthor(ctx context.Context, authorID int64) ([]*posts.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		INNER JOIN user_posts up ON up.post_id = p.id
		WHERE up.user_id = $1
		ORDER BY p.id ASC`

	rows, err := r.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts by author: %w", err)
	}
	defer closeRows(rows)

	result := make([]*posts.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		result = append(result, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return result, nil
}

// GetAuthorIDs returns the author IDs of a post in ascending order
func (r *postgresPostRepo) GetAuthorIDs(ctx context.Context, postID int64) ([]int64, error) {
	return authorIDs(ctx, r.db, postID)
}

func authorIDs(ctx context.Context, q querier, postID int64) ([]int64, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT user_id FROM user_posts WHERE post_id = $1 ORDER BY user_id ASC`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query post authors: %w", err)
	}
	defer closeRows(rows)

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan author ID: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author rows: %w", err)
	}

	return ids, nil
}

// Update reconciles authors and applies field changes atomically.
// The post row is locked first so concurrent updates of the same post serialize.
func (r *postgresPostRepo) Update(ctx context.Context, postID int64, changes posts.PostChanges) (*posts.Post, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer rollback(tx, slog.Int64("post_id", postID))

	var lockedID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM posts WHERE id = $1 FOR UPDATE`, postID).Scan(&lockedID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock post: %w", err)
	}

	if changes.ReplaceAuthors {
		if err := reconcileAuthors(ctx, tx, postID, changes.DesiredAuthorIDs); err != nil {
			return nil, err
		}
	}

	query := `
		UPDATE posts p
		SET text = COALESCE($2, p.text),
			tags = COALESCE($3, p.tags),
			updated_at = NOW()
		WHERE p.id = $1
		RETURNING ` + postColumns

	post, err := scanPost(tx.QueryRowContext(ctx, query, postID, changes.Text, nullableTags(changes.Tags)))
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit post update: %w", err)
	}

	return post, nil
}

func reconcileAuthors(ctx context.Context, tx *sql.Tx, postID int64, desired []int64) error {
	current, err := authorIDs(ctx, tx, postID)
	if err != nil {
		return err
	}

	add, remove := posts.Reconcile(current, desired)

	if len(remove) > 0 {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM user_posts WHERE post_id = $1 AND user_id = ANY($2)`,
			postID, pq.Array(remove),
		); err != nil {
			return fmt.Errorf("failed to remove post authors: %w", err)
		}
	}

	if len(add) > 0 {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO user_posts (user_id, post_id) SELECT unnest($2::bigint[]), $1::bigint`,
			postID, pq.Array(add),
		); err != nil {
			if pqErrorCode(err) == pqForeignKeyViolation {
				return posts.ErrAuthorNotFound
			}
			return fmt.Errorf("failed to add post authors: %w", err)
		}
	}

	slog.Debug("post authors reconciled",
		slog.Int64("post_id", postID),
		slog.Any("added", add),
		slog.Any("removed", remove),
	)

	return nil
}
