// Package services provides business logic and orchestration between the
// HTTP layer, storage and AMQP.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"fintrack/internal/auth"
	"fintrack/internal/core"
	"fintrack/internal/storage"
)

// AuthService handles signup, login and token resolution.
type AuthService struct {
	storage    *storage.Repository
	issuer     *auth.TokenIssuer
	bcryptCost int
}

func NewAuthService(storage *storage.Repository, issuer *auth.TokenIssuer, bcryptCost int) *AuthService {
	return &AuthService{
		storage:    storage,
		issuer:     issuer,
		bcryptCost: bcryptCost,
	}
}

// Signup registers a new user. The email is trimmed and lowercased before the
// uniqueness check so casing variants of one address cannot coexist.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (core.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return core.User{}, core.ErrEmptyEmail
	}
	if password == "" {
		return core.User{}, core.ErrEmptyPassword
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return core.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.storage.CreateUser(ctx, email, hash, strings.TrimSpace(name))
	if err != nil {
		return core.User{}, err
	}

	slog.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login verifies credentials and returns a signed bearer token. An unknown
// email and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		return "", core.ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", core.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	slog.InfoContext(ctx, "User logged in", "user_id", user.ID, "email", user.Email)
	return token, nil
}

// UserFromToken resolves a bearer token to its user. A valid token whose
// subject no longer exists is treated the same as an invalid one.
func (s *AuthService) UserFromToken(ctx context.Context, token string) (core.User, error) {
	email, err := s.issuer.Validate(token)
	if err != nil {
		return core.User{}, err
	}

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		return core.User{}, core.ErrInvalidToken
	}
	return user, nil
}
