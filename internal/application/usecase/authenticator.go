package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"vidvault/internal/domain/dto"
	"vidvault/internal/domain/entity"
	"vidvault/internal/domain/model"
	"vidvault/internal/domain/repository/session"
	"vidvault/internal/domain/repository/user"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// ErrInvalidCredentials is deliberately uniform: login never reveals
// whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

type Authenticator struct {
	users    user.Registry
	sessions session.Store
}

func NewAuthenticator(users user.Registry, sessions session.Store) *Authenticator {
	return &Authenticator{
		users:    users,
		sessions: sessions,
	}
}

func (a *Authenticator) Register(ctx context.Context, req dto.RegisterRequest) error {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.ToLower(strings.TrimSpace(req.Username))

	if name == "" || email == "" || username == "" || req.Password == "" {
		return entity.NewValidationError("missing-field", "all fields are required")
	}
	if len(username) < minUsernameLen {
		return entity.NewValidationError("username-too-short",
			fmt.Sprintf("username must be at least %d characters", minUsernameLen))
	}
	if len(req.Password) < minPasswordLen {
		return entity.NewValidationError("password-too-short",
			fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}

	if _, err := a.users.GetByUsername(ctx, username); err == nil {
		return entity.NewValidationError("username-taken", "username already exists")
	}
	if _, err := a.users.GetByEmail(ctx, email); err == nil {
		return entity.NewValidationError("email-taken", "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		ID:           "user_" + uuid.NewString(),
		Name:         name,
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := a.users.Create(ctx, u); err != nil {
		if errors.Is(err, entity.ErrDuplicate) {
			return entity.NewValidationError("username-taken", "username already exists")
		}

		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (a *Authenticator) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	u, err := a.users.GetByUsername(ctx, username)
	if errors.Is(err, entity.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	token, err := a.sessions.Create(ctx, u.ID)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	return token, nil
}

func (a *Authenticator) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	return a.sessions.Delete(ctx, token)
}

// Resolve maps a session token to a user id, or entity.ErrUnauthorized.
func (a *Authenticator) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", entity.ErrUnauthorized
	}

	userID, err := a.sessions.Resolve(ctx, token)
	if errors.Is(err, entity.ErrNotFound) {
		return "", entity.ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("resolve session: %w", err)
	}

	return userID, nil
}
