package services

import (
	"context"
	"fmt"

	"github.com/trananh2004/shopfront/internal/client/models"
	"github.com/trananh2004/shopfront/internal/client/rest"
)

// ProductService exposes the read-only storefront catalog.
type ProductService interface {
	List(ctx context.Context) ([]*models.Product, error)
	Get(ctx context.Context, id int64) (*models.Product, error)
}

type productService struct {
	client rest.Client
}

func NewProductService(client rest.Client) ProductService {
	return &productService{client: client}
}

func (s *productService) List(ctx context.Context) ([]*models.Product, error) {
	list, err := s.client.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

func (s *productService) Get(ctx context.Context, id int64) (*models.Product, error) {
	p, err := s.client.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}
