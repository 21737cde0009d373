package services

import (
	"context"

	"github.com/trananh2004/shopfront/internal/client/models"
)

// fakeClient implements rest.Client for unit tests. Behavior and results
// are configured per test; call arguments are recorded for assertions.
type fakeClient struct {
	CloseErr error
	PingErr  error

	GetProfileRet   *models.Profile
	GetProfileErr   error
	GetProfileCalls int

	// When ReplaceRet is nil the fake echoes the request body back, which
	// matches how the real store behaves.
	ReplaceRet      *models.Profile
	ReplaceErr      error
	ReplaceCalls    int
	LastReplaceID   string
	LastReplaceBody *models.Profile

	// ReplaceHook, when set, runs at the start of ReplaceProfile. Tests use
	// it to park a write mid-flight.
	ReplaceHook func()

	DeleteErr error

	FindRet       []*models.Profile
	FindErr       error
	LastFindEmail string

	CreateRet      *models.Profile
	CreateErr      error
	LastCreateBody *models.Profile

	ListRet []*models.Product
	ListErr error

	GetProductRet *models.Product
	GetProductErr error
}

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	f.GetProfileCalls++
	if f.GetProfileErr != nil {
		return nil, f.GetProfileErr
	}
	return f.GetProfileRet.Clone(), nil
}

func (f *fakeClient) ReplaceProfile(ctx context.Context, id string, p *models.Profile) (*models.Profile, error) {
	if f.ReplaceHook != nil {
		f.ReplaceHook()
	}
	f.ReplaceCalls++
	f.LastReplaceID = id
	f.LastReplaceBody = p.Clone()
	if f.ReplaceErr != nil {
		return nil, f.ReplaceErr
	}
	if f.ReplaceRet != nil {
		return f.ReplaceRet.Clone(), nil
	}
	return p.Clone(), nil
}

func (f *fakeClient) DeleteProfile(ctx context.Context, id string) error { return f.DeleteErr }

func (f *fakeClient) FindUsersByEmail(ctx context.Context, email string) ([]*models.Profile, error) {
	f.LastFindEmail = email
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	return f.FindRet, nil
}

func (f *fakeClient) CreateUser(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	f.LastCreateBody = p.Clone()
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	if f.CreateRet != nil {
		return f.CreateRet.Clone(), nil
	}
	created := p.Clone()
	created.ID = "generated-id"
	return created, nil
}

func (f *fakeClient) ListProducts(ctx context.Context) ([]*models.Product, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.ListRet, nil
}

func (f *fakeClient) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	if f.GetProductErr != nil {
		return nil, f.GetProductErr
	}
	return f.GetProductRet, nil
}
