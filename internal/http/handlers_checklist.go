package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripledger/internal/core"
)

type checklistResponse struct {
	Items     []core.ChecklistItem `json:"items"`
	Completed int                  `json:"completed"`
	Total     int                  `json:"total"`
}

func (h *Handler) GetChecklist(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")

	items, err := h.services.Checklists.List(r.Context(), tripID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	completed, total, err := h.services.Checklists.Progress(r.Context(), tripID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, checklistResponse{Items: items, Completed: completed, Total: total})
}

func (h *Handler) AddChecklistTask(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Task string `json:"task"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	item, err := h.services.Checklists.AddTask(r.Context(), chi.URLParam(r, "tripID"), body.Task)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *Handler) ToggleChecklistTask(w http.ResponseWriter, r *http.Request) {
	item, err := h.services.Checklists.ToggleTask(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *Handler) DeleteChecklistTask(w http.ResponseWriter, r *http.Request) {
	err := h.services.Checklists.DeleteTask(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
