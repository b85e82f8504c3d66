package ports

import (
	"context"

	"github.com/stormapp/canteen-api/internal/core/domain"
)

type AuthService interface {
	// Signup registers a new account. Self-registered accounts always get
	// the "user" role; admins come from seeding.
	Signup(ctx context.Context, email, name, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// ForgotPassword issues a short-lived reset token for the given email.
	// It reports nothing about whether the account exists.
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword consumes a reset token and stores the new password.
	ResetPassword(ctx context.Context, token, password string) error
}
