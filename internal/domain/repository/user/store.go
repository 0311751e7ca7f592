package user

import (
	"context"

	"vidvault/internal/domain/model"
)

// Directory is the read-only view the core services consume: resolving an
// owner id to a display name.
type Directory interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// Registry is the auth vertical's write surface.
type Registry interface {
	Directory
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}
