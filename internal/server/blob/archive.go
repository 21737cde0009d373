package blob

import (
	"context"

	"github.com/trananh2004/shopfront/internal/logging"
	"github.com/trananh2004/shopfront/internal/server/models"
	"github.com/trananh2004/shopfront/internal/server/repositories/users"
)

// avatarStore is the archive surface the decorator needs.
type avatarStore interface {
	Store(ctx context.Context, userID, dataURL string) (string, error)
}

// ArchivingRepository decorates a users.Repository so that every replace
// carrying a new avatar also lands a copy in object storage. Archive
// failures are logged and never fail the write; the record is the
// authoritative copy.
type ArchivingRepository struct {
	users.Repository
	archive avatarStore
	log     logging.Logger
}

func NewArchivingRepository(next users.Repository, archive avatarStore, log logging.Logger) *ArchivingRepository {
	return &ArchivingRepository{
		Repository: next,
		archive:    archive,
		log:        log.With("component", "blob.archive"),
	}
}

func (r *ArchivingRepository) Replace(ctx context.Context, user *models.User) (*models.User, error) {
	prev, prevErr := r.Repository.GetByID(ctx, user.ID)

	updated, err := r.Repository.Replace(ctx, user)
	if err != nil {
		return nil, err
	}

	if updated.Avatar != "" && (prevErr != nil || prev.Avatar != updated.Avatar) {
		key, err := r.archive.Store(ctx, updated.ID, updated.Avatar)
		if err != nil {
			r.log.Warn(ctx, "avatar archive failed", "id", updated.ID, "error", err)
		} else {
			r.log.Info(ctx, "avatar archived", "id", updated.ID, "key", key)
		}
	}

	return updated, nil
}
