package usecase

import (
	"context"
	"fmt"
	"sort"

	"vidvault/internal/application/usecase/abstraction"
	"vidvault/internal/domain/dto"
	"vidvault/internal/domain/model"
	"vidvault/internal/domain/repository/metadata"
	"vidvault/internal/domain/repository/user"
	"vidvault/pkg/utils"
)

// unknownOwnerName is rendered when an owner id no longer resolves to an
// account. A missing owner never fails a listing.
const unknownOwnerName = "Unknown User"

// uploadedLayout matches the timestamp format the web UI renders directly.
const uploadedLayout = "2006-01-02 15:04:05"

type Cataloger struct {
	lister metadata.Lister
	users  user.Directory
}

func NewCataloger(lister metadata.Lister, users user.Directory) *Cataloger {
	return &Cataloger{
		lister: lister,
		users:  users,
	}
}

// List builds the catalog for a viewer: newest first, ties in insertion
// order, each entry annotated with the owner's display name and whether
// the viewer owns it. An anonymous viewer gets an empty catalog rather
// than an error.
func (c *Cataloger) List(ctx context.Context, viewerID, scope string) ([]dto.VideoView, error) {
	if viewerID == "" {
		return []dto.VideoView{}, nil
	}

	videos, err := c.lister.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list video records: %w", err)
	}

	if scope == abstraction.ScopeMine {
		filtered := videos[:0]
		for _, v := range videos {
			if v.OwnerID == viewerID {
				filtered = append(filtered, v)
			}
		}
		videos = filtered
	}

	// ListAll yields insertion order; the stable sort keeps it for ties.
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].UploadedAt.After(videos[j].UploadedAt)
	})

	views := make([]dto.VideoView, 0, len(videos))
	for i := range videos {
		views = append(views, c.view(ctx, &videos[i], viewerID))
	}

	return views, nil
}

func (c *Cataloger) view(ctx context.Context, v *model.Video, viewerID string) dto.VideoView {
	ownerName := unknownOwnerName
	if owner, err := c.users.GetByID(ctx, v.OwnerID); err == nil {
		ownerName = owner.Name
	}

	return dto.VideoView{
		ID:        v.ID,
		Title:     v.Title,
		OwnerName: ownerName,
		IsOwner:   v.OwnerID == viewerID,
		Uploaded:  v.UploadedAt.Format(uploadedLayout),
		Size:      utils.FormatSize(v.SizeBytes),
		Format:    v.Format,
	}
}
