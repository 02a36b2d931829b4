package handlers

import (
	"net/http"

	"dompet-gateway/src/directory"
	"dompet-gateway/src/models"

	"github.com/go-chi/chi/v5"
)

func ListInstitutions(dir *directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"institutions": dir.List(),
		})
	}
}

func GetInstitution(dir *directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "institution_id")
		ins, ok := dir.Get(id)
		if !ok {
			writeError(w, models.NotFound("institution not found"))
			return
		}
		writeJSON(w, http.StatusOK, ins)
	}
}
