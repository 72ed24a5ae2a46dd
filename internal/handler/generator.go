package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/history"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation and
// entropy estimation.
type GeneratorHandler struct {
	service *service.GeneratorService
	history *history.Store
}

// NewGeneratorHandler creates a new GeneratorHandler. history may be nil,
// in which case generations are not recorded.
func NewGeneratorHandler(svc *service.GeneratorService, hist *history.Store) *GeneratorHandler {
	return &GeneratorHandler{service: svc, history: hist}
}

// HandleGenerate handles POST /api/v1/generate requests. When the request
// carries a valid auth token, the result is also recorded in that user's
// in-memory history.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if err.Error() == "http: request body too large" {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
			return
		}
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	h.record(r, resp)
	writeJSON(w, http.StatusOK, resp)
}

// HandleEstimateEntropy handles POST /api/v1/entropy requests: a pure
// estimate for an arbitrary length and alphabet size, nothing generated.
func (h *GeneratorHandler) HandleEstimateEntropy(w http.ResponseWriter, r *http.Request) {
	var req model.EntropyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.EstimateEntropy(req))
}

func (h *GeneratorHandler) record(r *http.Request, resp model.GenerateResponse) {
	if h.history == nil {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return
	}
	h.history.Push(userID, model.HistoryEntry{
		Password:    resp.Password,
		Length:      resp.Length,
		EntropyBits: resp.EntropyBits,
		Strength:    resp.Strength,
		GeneratedAt: time.Now(),
	})
}

// isValidationError reports whether err is one of the generator's typed
// configuration failures, all of which map to 400.
func isValidationError(err error) bool {
	return errors.Is(err, crypto.ErrInvalidLength) ||
		errors.Is(err, crypto.ErrLengthTooShort) ||
		errors.Is(err, crypto.ErrLengthTooLong) ||
		errors.Is(err, crypto.ErrLengthInsufficient) ||
		errors.Is(err, crypto.ErrNoCharacterTypes) ||
		errors.Is(err, crypto.ErrEmptyAfterFilter)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// decodeJSON reads a size-capped JSON body into v. On failure it writes
// the error response itself and reports false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

// requireUser pulls the authenticated user from the request context,
// answering 401 itself when the auth middleware attached none.
func requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
	}
	return userID, ok
}
