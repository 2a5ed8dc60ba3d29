package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripledger/internal/core"
)

func (h *Handler) ListItinerary(w http.ResponseWriter, r *http.Request) {
	activities, err := h.services.Itineraries.List(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, activities)
}

// SaveActivity serves both POST and PUT: an activity with an id replaces
// the stored one, without an id it is inserted.
func (h *Handler) SaveActivity(w http.ResponseWriter, r *http.Request) {
	var activity core.Activity
	if !decodeBody(w, r, &activity) {
		return
	}

	saved, err := h.services.Itineraries.Save(r.Context(), chi.URLParam(r, "tripID"), activity)
	if err != nil {
		respondError(w, r, err)
		return
	}
	status := http.StatusOK
	if r.Method == http.MethodPost {
		status = http.StatusCreated
	}
	respondJSON(w, status, saved)
}

func (h *Handler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	err := h.services.Itineraries.Delete(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
