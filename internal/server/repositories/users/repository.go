package users

import (
	"context"

	"github.com/trananh2004/shopfront/internal/server/models"
)

// Repository is the user record store. Replace is an unconditional full
// overwrite of every column; there is no partial update.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) ([]*models.User, error)
	Replace(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
