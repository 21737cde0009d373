package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/trananh2004/shopfront/internal/client/models"
	"github.com/trananh2004/shopfront/internal/common"
)

// HTTPClient is the production Client backed by net/http.
//
// Error mapping: network failures and non-success statuses both surface as
// common.ErrorUnavailable (the store exposes no structured error codes);
// 404 maps to common.ErrorNotFound.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// doJSON performs one request with an optional JSON body and decodes the
// response into out when out is non-nil.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(b)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", common.ContentTypeJSON)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return common.ErrorNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: unexpected status %d", common.ErrorUnavailable, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/ping", nil, nil)
}

func (c *HTTPClient) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	var p models.Profile
	if err := c.doJSON(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ReplaceProfile issues the full-record PUT. Fields omitted from p are
// cleared by the store, so callers must always send a complete record.
func (c *HTTPClient) ReplaceProfile(ctx context.Context, id string, p *models.Profile) (*models.Profile, error) {
	var updated models.Profile
	if err := c.doJSON(ctx, http.MethodPut, "/users/"+url.PathEscape(id), p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) DeleteProfile(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) FindUsersByEmail(ctx context.Context, email string) ([]*models.Profile, error) {
	q := url.Values{common.EmailQueryParam: {email}}
	var list []*models.Profile
	if err := c.doJSON(ctx, http.MethodGet, "/users?"+q.Encode(), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	var created models.Profile
	if err := c.doJSON(ctx, http.MethodPost, "/users", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) ListProducts(ctx context.Context) ([]*models.Product, error) {
	var list []*models.Product
	if err := c.doJSON(ctx, http.MethodGet, "/products", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
