package user

import (
	"context"

	"hotelier/models"
)

// UserService defines account registration and authentication.
type UserService interface {
	// Register creates an account and returns a signed token for it.
	Register(ctx context.Context, input models.RegisterInput) (*models.AuthResult, error)
	// Authenticate verifies credentials and returns a signed token.
	Authenticate(ctx context.Context, input models.LoginInput) (*models.AuthResult, error)
	// GetUserByID fetches an account by ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
