package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripledger/internal/core"
)

func (h *Handler) AddFriend(w http.ResponseWriter, r *http.Request) {
	var friend core.Friend
	if !decodeBody(w, r, &friend) {
		return
	}
	friend.TripID = chi.URLParam(r, "tripID")

	created, err := h.services.Friends.Add(r.Context(), friend)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListFriends(w http.ResponseWriter, r *http.Request) {
	friends, err := h.services.Friends.ListByTrip(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, friends)
}

func (h *Handler) ListFriendsOrdered(w http.ResponseWriter, r *http.Request) {
	friends, err := h.services.Friends.Ordered(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, friends)
}

func (h *Handler) SetSelf(w http.ResponseWriter, r *http.Request) {
	err := h.services.Friends.SetSelf(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) DeleteFriend(w http.ResponseWriter, r *http.Request) {
	err := h.services.Friends.Delete(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
