package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrPostNotFound is returned when a post ID does not exist
	ErrPostNotFound = errors.New("post not found")

	// ErrNotAuthor is returned when the caller is not among the post's authors
	ErrNotAuthor = errors.New("user is not an author of this post")

	// ErrAuthorNotFound is returned when a requested author ID does not reference a user
	ErrAuthorNotFound = errors.New("author not found")

	// ErrEmptyText is returned when an update supplies an empty text
	ErrEmptyText = errors.New("post text must be non-empty")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
