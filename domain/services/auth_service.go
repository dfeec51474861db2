package services

import (
	"context"

	"deskhub/domain/dto"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	// Login verifies credentials and returns the user plus a signed session
	// token for the cookie.
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error)
	Logout(ctx context.Context, token string) error
	// CurrentUser resolves a session token to its user, or
	// apperrors.ErrUnauthenticated.
	CurrentUser(ctx context.Context, token string) (*dto.UserResponse, error)
}
