package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"dompet-gateway/src/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps a GatewayError onto its status and wire shape; anything else
// is surfaced as a storage error without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	var gwErr *models.GatewayError
	if !errors.As(err, &gwErr) {
		gwErr = models.StorageError("internal error")
	}
	writeJSON(w, gwErr.Status, models.ErrorResponse{
		Error:            gwErr.Kind,
		ErrorDescription: gwErr.Description,
	})
}
