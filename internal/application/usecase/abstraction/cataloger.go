package abstraction

import (
	"context"

	"vidvault/internal/domain/dto"
)

// Catalog scopes.
const (
	ScopeMine = "mine"
	ScopeAll  = "all"
)

// Cataloger renders the owner-annotated, sorted video listing for a viewer.
type Cataloger interface {
	List(ctx context.Context, viewerID, scope string) ([]dto.VideoView, error)
}
