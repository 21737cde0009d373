package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trananh2004/shopfront/internal/logging"
	"github.com/trananh2004/shopfront/internal/server/models"
	"github.com/trananh2004/shopfront/internal/server/repositories/products"
	"github.com/trananh2004/shopfront/internal/server/repositories/users"
)

func newTestServer(t *testing.T) (*httptest.Server, *users.InMemoryRepository) {
	t.Helper()
	userRepo := users.NewInMemoryRepository()
	productRepo := products.NewInMemoryRepository()
	log := logging.NewZapLogger(zap.NewNop())

	srv := httptest.NewServer(NewRouter(userRepo, productRepo, log))
	t.Cleanup(srv.Close)
	return srv, userRepo
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var payload bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		payload = *bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, &payload)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestPing(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateAndGetUser(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/users", models.User{
		Name: "Anh", Email: "a@b.co", Password: "pw", Dob: 24071999,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[models.User](t, resp)
	require.NotEmpty(t, created.ID)

	resp = doJSON(t, http.MethodGet, srv.URL+"/users/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[models.User](t, resp)
	assert.Equal(t, "Anh", got.Name)
	assert.Equal(t, int64(24071999), got.Dob)
}

func TestGetUser_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/users/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReplaceUser_FullOverwrite(t *testing.T) {
	srv, repo := newTestServer(t)

	created, err := repo.Create(context.Background(), &models.User{
		Name: "Anh", Company: "ACME", Avatar: "data:image/jpeg;base64,xx",
	})
	require.NoError(t, err)

	// PUT body without company or avatar clears both.
	resp := doJSON(t, http.MethodPut, srv.URL+"/users/"+created.ID, map[string]any{
		"name":  "New Name",
		"email": "new@b.co",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[models.User](t, resp)
	assert.Equal(t, "New Name", updated.Name)
	assert.Empty(t, updated.Company)
	assert.Empty(t, updated.Avatar)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Avatar, "cleared fields must be persisted as cleared")
}

func TestReplaceUser_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPut, srv.URL+"/users/missing", models.User{Name: "X"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFindUsersByEmail(t *testing.T) {
	srv, repo := newTestServer(t)

	_, err := repo.Create(context.Background(), &models.User{Email: "a@b.co"})
	require.NoError(t, err)

	resp := doJSON(t, http.MethodGet, srv.URL+"/users?email=a@b.co", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]models.User](t, resp)
	assert.Len(t, list, 1)

	resp = doJSON(t, http.MethodGet, srv.URL+"/users?email=other@b.co", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	empty := decode[[]models.User](t, resp)
	assert.Empty(t, empty)
}

func TestDeleteUser(t *testing.T) {
	srv, repo := newTestServer(t)

	created, err := repo.Create(context.Background(), &models.User{Email: "a@b.co"})
	require.NoError(t, err)

	resp := doJSON(t, http.MethodDelete, srv.URL+"/users/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/users/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProducts(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/products", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]models.Product](t, resp)
	require.NotEmpty(t, list)

	resp = doJSON(t, http.MethodGet, srv.URL+"/products/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/products/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/products/abc", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
