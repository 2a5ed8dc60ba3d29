package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripledger/internal/core"
)

func (h *Handler) AddExpense(w http.ResponseWriter, r *http.Request) {
	var form core.ExpenseForm
	if !decodeBody(w, r, &form) {
		return
	}

	created, err := h.services.Expenses.Add(r.Context(), chi.URLParam(r, "tripID"), form)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.services.Expenses.ListByTrip(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, expenses)
}

func (h *Handler) ExpensesByDate(w http.ResponseWriter, r *http.Request) {
	groups, err := h.services.Expenses.GroupedByDate(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	if groups == nil {
		groups = []core.DateGroup{}
	}
	respondJSON(w, http.StatusOK, groups)
}

func (h *Handler) ExpensesByCategory(w http.ResponseWriter, r *http.Request) {
	groups, err := h.services.Expenses.GroupedByCategory(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	if groups == nil {
		groups = []core.CategoryGroup{}
	}
	respondJSON(w, http.StatusOK, groups)
}

func (h *Handler) SplitBreakdown(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.Expenses.SplitBreakdown(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	if entries == nil {
		entries = []core.SplitEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	err := h.services.Expenses.Delete(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
