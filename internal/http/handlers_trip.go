package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripledger/internal/core"
)

func (h *Handler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var trip core.Trip
	if !decodeBody(w, r, &trip) {
		return
	}

	created, err := h.services.Trips.Create(r.Context(), trip)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := h.services.Trips.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if trips == nil {
		trips = []core.Trip{}
	}
	respondJSON(w, http.StatusOK, trips)
}

func (h *Handler) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := h.services.Trips.Get(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

func (h *Handler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Trips.Delete(r.Context(), chi.URLParam(r, "tripID")); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type budgetResponse struct {
	HasBudget bool              `json:"hasBudget"`
	Stats     *core.BudgetStats `json:"stats,omitempty"`
}

func (h *Handler) BudgetReport(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.Expenses.BudgetReport(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, budgetResponse{HasBudget: stats != nil, Stats: stats})
}
