package session

import "context"

// Store issues and resolves opaque session tokens. Tokens are server-side
// state so that logout revokes them immediately.
type Store interface {
	Create(ctx context.Context, userID string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
