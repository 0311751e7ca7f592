package abstraction

import (
	"context"

	"vidvault/internal/domain/dto"
)

// Authenticator is the auth vertical: account registration and session
// lifecycle. The core services only ever see the user id that Resolve
// returns.
type Authenticator interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (string, error)
}
