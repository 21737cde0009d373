package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/trananh2004/shopfront/internal/common"
	"github.com/trananh2004/shopfront/internal/logging"
)

// apiError is the uniform JSON error body.
type apiError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// writeError maps repository errors to HTTP statuses and renders the JSON
// body. Unknown errors are logged and reported as 500 without detail.
func writeError(w http.ResponseWriter, r *http.Request, log logging.Logger, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	if errors.Is(err, common.ErrorNotFound) {
		status = http.StatusNotFound
		msg = "not found"
	} else {
		log.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	render.Status(r, status)
	render.JSON(w, r, apiError{Status: status, Message: msg})
}
