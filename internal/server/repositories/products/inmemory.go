package products

import (
	"context"
	"sync"

	"github.com/trananh2004/shopfront/internal/common"
	"github.com/trananh2004/shopfront/internal/server/models"
)

// InMemoryRepository serves the catalog from memory, seeded with the same
// sample items the Postgres migration inserts.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items []*models.Product
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: seedProducts()}
}

func seedProducts() []*models.Product {
	return []*models.Product{
		{ID: 1, Title: "Fjallraven Foldsack No. 1 Backpack", Price: 109.95, Description: "Fits 15 inch laptops", Category: "men's clothing"},
		{ID: 2, Title: "Mens Casual Premium Slim Fit T-Shirt", Price: 22.30, Description: "Slim-fitting style, contrast raglan sleeve", Category: "men's clothing"},
		{ID: 3, Title: "Mens Cotton Jacket", Price: 55.99, Description: "Great outerwear jacket for spring, autumn and winter", Category: "men's clothing"},
		{ID: 4, Title: "John Hardy Women's Legends Naga Bracelet", Price: 695.00, Description: "Inspired by the mythical water dragon", Category: "jewelery"},
		{ID: 5, Title: "WD 2TB Elements Portable External Hard Drive", Price: 64.00, Description: "USB 3.0 and USB 2.0 compatibility", Category: "electronics"},
		{ID: 6, Title: "SanDisk SSD PLUS 1TB Internal SSD", Price: 109.00, Description: "Easy upgrade for faster boot up", Category: "electronics"},
	}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Product, len(r.items))
	for i, p := range r.items {
		c := *p
		result[i] = &c
	}
	return result, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if p.ID == id {
			c := *p
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}
