package users

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Usernames: start/end with alphanumeric, inner characters may include '_', '-' and '.'
var usernameRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9._-]*[a-z0-9])?$`)

const maxUsernameLength = 64

type userService struct {
	userRepo UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// CreateUser creates a new user
func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	username := strings.TrimSpace(strings.ToLower(req.Username))
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	// Repository will handle duplicate constraint errors
	return s.userRepo.Create(ctx, &User{Username: username})
}

// GetUserByID retrieves a user by their numeric ID
func (s *userService) GetUserByID(ctx context.Context, id int64) (*User, error) {
	if id <= 0 {
		return nil, ErrUserNotFound
	}

	return s.userRepo.GetByID(ctx, id)
}

// GetUserByUsername retrieves a user by their username
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" {
		return nil, &InvalidUsernameError{Username: username, Reason: "username is required"}
	}

	return s.userRepo.GetByUsername(ctx, username)
}

func validateUsername(username string) error {
	if username == "" {
		return &InvalidUsernameError{Username: username, Reason: "username is required"}
	}

	if len(username) > maxUsernameLength {
		return &InvalidUsernameError{
			Username: username,
			Reason:   fmt.Sprintf("must be at most %d characters", maxUsernameLength),
		}
	}

	if !usernameRegex.MatchString(username) {
		return &InvalidUsernameError{
			Username: username,
			Reason:   "must contain only lowercase letters, digits, '.', '_' and '-', and start and end with a letter or digit",
		}
	}

	return nil
}
