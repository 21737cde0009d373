package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/trananh2004/shopfront/internal/common"
	"github.com/trananh2004/shopfront/internal/logging"
	"github.com/trananh2004/shopfront/internal/server/models"
	"github.com/trananh2004/shopfront/internal/server/repositories/users"
)

// UserHandler serves the /users resource. The store accepts whatever record
// body the client sends; there is no server-side field validation.
type UserHandler struct {
	repo users.Repository
	log  logging.Logger
}

// Create handles POST /users. The id is assigned by the repository.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body models.User
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, apiError{Status: http.StatusBadRequest, Message: "invalid body"})
		return
	}

	created, err := h.repo.Create(r.Context(), &body)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	h.log.Info(r.Context(), "user created", "id", created.ID)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	render.JSON(w, r, u)
}

// Find handles GET /users?email=... and returns a list of zero or more
// matching records. Without the email parameter the result is empty; the
// store never enumerates all users.
func (h *UserHandler) Find(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get(common.EmailQueryParam)
	if email == "" {
		render.JSON(w, r, []*models.User{})
		return
	}

	list, err := h.repo.FindByEmail(r.Context(), email)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if list == nil {
		list = []*models.User{}
	}
	render.JSON(w, r, list)
}

// Replace handles PUT /users/{id}: an unconditional full overwrite. Fields
// absent from the body decode to their zero values and are persisted as
// such, which is exactly the replace-the-whole-record contract.
func (h *UserHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var body models.User
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, apiError{Status: http.StatusBadRequest, Message: "invalid body"})
		return
	}
	body.ID = chi.URLParam(r, "id")

	updated, err := h.repo.Replace(r.Context(), &body)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	h.log.Info(r.Context(), "user replaced", "id", updated.ID)
	render.JSON(w, r, updated)
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
