package handler

import (
	"net/http"

	"github.com/passforge/passforge-go/internal/history"
	"github.com/passforge/passforge-go/internal/model"
)

// HistoryHandler exposes the authenticated user's recent generations.
type HistoryHandler struct {
	store *history.Store
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(store *history.Store) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// HandleList handles GET /api/v1/history requests.
func (h *HistoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	entries := h.store.List(userID)
	if entries == nil {
		entries = []model.HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, model.HistoryResponse{Entries: entries})
}

// HandleClear handles DELETE /api/v1/history requests.
func (h *HistoryHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	h.store.Clear(userID)
	w.WriteHeader(http.StatusNoContent)
}
