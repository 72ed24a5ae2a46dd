package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// PresetHandler handles HTTP requests for saved generation presets.
type PresetHandler struct {
	service *service.PresetService
}

// NewPresetHandler creates a new PresetHandler.
func NewPresetHandler(svc *service.PresetService) *PresetHandler {
	return &PresetHandler{service: svc}
}

// HandleList handles GET /api/v1/presets requests.
func (h *PresetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	presets, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	if presets == nil {
		presets = []model.PresetResponse{}
	}

	writeJSON(w, http.StatusOK, presets)
}

// HandleSave handles POST /api/v1/presets requests, creating or replacing
// a named preset.
func (h *PresetHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.PresetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Save(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPresetNameRequired),
			errors.Is(err, service.ErrPresetNameTooLong),
			isValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleDelete handles DELETE /api/v1/presets/{name} requests.
func (h *PresetHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "name")); err != nil {
		if errors.Is(err, service.ErrPresetNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGenerate handles POST /api/v1/presets/{name}/generate requests.
func (h *PresetHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Generate(r.Context(), userID, chi.URLParam(r, "name"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPresetNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case isValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
