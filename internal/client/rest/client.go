// Package rest talks to the remote profile store: a plain REST resource
// collection with GET/PUT/POST/DELETE semantics and full-record replacement
// on PUT. The store enforces nothing; every invariant lives client-side.
package rest

import (
	"context"

	"github.com/trananh2004/shopfront/internal/client/models"
)

// Client is the transport boundary of the account shell. Services depend on
// this interface; tests swap in fakes.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	// Users collection.
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	ReplaceProfile(ctx context.Context, id string, p *models.Profile) (*models.Profile, error)
	DeleteProfile(ctx context.Context, id string) error
	FindUsersByEmail(ctx context.Context, email string) ([]*models.Profile, error)
	CreateUser(ctx context.Context, p *models.Profile) (*models.Profile, error)

	// Products collection (read-only catalog).
	ListProducts(ctx context.Context) ([]*models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
}
