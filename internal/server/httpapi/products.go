package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/trananh2004/shopfront/internal/common"
	"github.com/trananh2004/shopfront/internal/logging"
	"github.com/trananh2004/shopfront/internal/server/models"
	"github.com/trananh2004/shopfront/internal/server/repositories/products"
)

// ProductHandler serves the read-only /products resource.
type ProductHandler struct {
	repo products.Repository
	log  logging.Logger
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if list == nil {
		list = []*models.Product{}
	}
	render.JSON(w, r, list)
}

// Get handles GET /products/{id}. A non-numeric id is treated as a missing
// product rather than a client error, matching the catalog's lax contract.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, h.log, common.ErrorNotFound)
		return
	}

	p, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	render.JSON(w, r, p)
}
