package repomanager

import (
	"context"
	"database/sql"

	"github.com/trananh2004/shopfront/internal/dbx"
	"github.com/trananh2004/shopfront/internal/server/repositories/products"
	"github.com/trananh2004/shopfront/internal/server/repositories/users"
)

// InMemoryRepositoryManager vends map-backed repositories. The DBTX argument
// is ignored; the same repository instances are returned on every call so
// state survives across requests.
type InMemoryRepositoryManager struct {
	users    *users.InMemoryRepository
	products *products.InMemoryRepository
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		users:    users.NewInMemoryRepository(),
		products: products.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Products(db dbx.DBTX) products.Repository {
	return m.products
}
