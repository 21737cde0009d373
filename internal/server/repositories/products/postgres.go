// Package products provides the catalog repositories of the profile store.
// The catalog is read-only; rows are seeded by migration.
package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/trananh2004/shopfront/internal/common"
	"github.com/trananh2004/shopfront/internal/dbx"
	"github.com/trananh2004/shopfront/internal/server/models"
)

// PostgresRepository implements catalog reads over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Product, error) {
	query := `SELECT id, title, price, description, category, image FROM products ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	defer rows.Close()

	var result []*models.Product
	for rows.Next() {
		var item models.Product
		if err := rows.Scan(&item.ID, &item.Title, &item.Price,
			&item.Description, &item.Category, &item.Image); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `SELECT id, title, price, description, category, image FROM products WHERE id = $1`

	var item models.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Title, &item.Price,
		&item.Description, &item.Category, &item.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &item, nil
}
