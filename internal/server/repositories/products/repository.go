package products

import (
	"context"

	"github.com/trananh2004/shopfront/internal/server/models"
)

// Repository is the read-only catalog store.
type Repository interface {
	List(ctx context.Context) ([]*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}
