package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mariana/talent-hub/internal/config"
	"github.com/mariana/talent-hub/internal/db"
)

// UserService provides business logic for user account operations
type UserService struct {
	db             *db.DB
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(database *db.DB, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             database,
		passwordConfig: passwordConfig,
	}
}

// Register creates a new user account. The first account becomes an admin;
// later ones start as regular users.
func (s *UserService) Register(ctx context.Context, req *RegisterRequest) (*db.User, error) {
	exists, err := s.db.CheckUsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if exists {
		return nil, &ErrUsernameTaken{Username: req.Username}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := db.RoleUser
	existing, err := s.db.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(existing) == 0 {
		role = db.RoleAdmin
	}

	userID, err := s.db.CreateUser(ctx, req.Username, passwordHash, role, req.Specialty)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}
	return user, nil
}

// Login authenticates a user by username and password.
func (s *UserService) Login(ctx context.Context, req *LoginRequest) (*db.User, error) {
	user, err := s.db.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	// generic error whether the user is missing or the password is wrong
	if user == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return user, nil
}

// UpdatePassword changes a user's password after verifying the current one.
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return &ErrNotFound{Resource: "user", ID: userID}
	}

	if !s.passwordConfig.VerifyPassword(currentPassword, user.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	newPasswordHash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.db.UpdatePassword(ctx, userID, newPasswordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// SetRole changes a user's role. The last remaining admin cannot be demoted.
func (s *UserService) SetRole(ctx context.Context, userID uuid.UUID, role string) (*db.User, error) {
	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, &ErrNotFound{Resource: "user", ID: userID}
	}

	if user.IsAdmin() && role != db.RoleAdmin {
		admins := 0
		users, err := s.db.ListUsers(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		for i := range users {
			if users[i].IsAdmin() {
				admins++
			}
		}
		if admins <= 1 {
			return nil, &ErrConflict{Message: "cannot demote the last admin"}
		}
	}

	if err := s.db.SetUserRole(ctx, userID, role); err != nil {
		return nil, fmt.Errorf("failed to set role: %w", err)
	}
	user.Role = role
	return user, nil
}
