package repomanager

import (
	"context"
	"database/sql"

	"github.com/trananh2004/shopfront/internal/dbx"
	"github.com/trananh2004/shopfront/internal/server/repositories/products"
	"github.com/trananh2004/shopfront/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Products(db dbx.DBTX) products.Repository
}
