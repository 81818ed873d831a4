package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"Scribe/internal/db/migrations"

	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to TEST_DATABASE_URL, runs migrations and clears all rows.
// Tests using it are skipped when no test database is configured.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping PostgreSQL repository test")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err, "Failed to connect to test database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(context.Background(), db), "Failed to run migrations")

	_, err = db.Exec(`TRUNCATE user_posts, posts, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return db
}

func TestRunMigrations_UsesEmbeddedFS(t *testing.T) {
	orig := gooseUp
	defer func() { gooseUp = orig }()

	var gotDir string
	gooseUp = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}

	require.NoError(t, RunMigrations(context.Background(), nil))
	assert.Equal(t, ".", gotDir)

	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestRunMigrations_WrapsError(t *testing.T) {
	orig := gooseUp
	defer func() { gooseUp = orig }()

	boom := errors.New("boom")
	gooseUp = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return boom
	}

	err := RunMigrations(context.Background(), nil)
	assert.ErrorIs(t, err, boom)
}

func TestPqErrorCode(t *testing.T) {
	assert.Equal(t, pqForeignKeyViolation, pqErrorCode(&pq.Error{Code: "23503"}))
	assert.Equal(t, pqUniqueViolation, pqErrorCode(fmt.Errorf("wrapped: %w", &pq.Error{Code: "23505"})))
	assert.Equal(t, "", pqErrorCode(errors.New("plain")))
	assert.Equal(t, "", pqErrorCode(nil))
}
