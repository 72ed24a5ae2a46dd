package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/history"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

func newTestGeneratorHandler(hist *history.Store) *GeneratorHandler {
	return NewGeneratorHandler(service.NewGeneratorService(), hist)
}

func TestHandleGenerateDefaults(t *testing.T) {
	h := newTestGeneratorHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp model.GenerateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Length != 16 || len(resp.Password) != 16 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.EntropyBits == 0 || resp.Strength == "" {
		t.Errorf("missing entropy annotation: %+v", resp)
	}
}

func TestHandleGenerateValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"length below minimum", `{"length": 4}`},
		{"length too long", `{"length": 500}`},
		{"no character types", `{"uppercase": false, "lowercase": false, "digits": false, "symbols": false}`},
	}

	h := newTestGeneratorHandler(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.HandleGenerate(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusBadRequest, rec.Body.String())
			}
		})
	}
}

func TestHandleGenerateMalformedBody(t *testing.T) {
	h := newTestGeneratorHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleGenerateRecordsHistoryForAuthenticatedUser(t *testing.T) {
	const secret = "test-secret"
	hist := history.NewStore(10)
	h := newTestGeneratorHandler(hist)

	token, err := crypto.GenerateToken(7, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	wrapped := middleware.OptionalJWTAuth(secret)(http.HandlerFunc(h.HandleGenerate))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	entries := hist.List(7)
	if len(entries) != 1 {
		t.Fatalf("history has %d entries, want 1", len(entries))
	}
	if entries[0].Length != 16 {
		t.Errorf("recorded length = %d, want 16", entries[0].Length)
	}
}

func TestHandleGenerateAnonymousNotRecorded(t *testing.T) {
	hist := history.NewStore(10)
	h := newTestGeneratorHandler(hist)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if entries := hist.List(0); len(entries) != 0 {
		t.Errorf("anonymous generation was recorded: %v", entries)
	}
}

func TestHandleEstimateEntropy(t *testing.T) {
	h := newTestGeneratorHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/entropy", strings.NewReader(`{"length": 12, "alphabet_size": 26}`))
	rec := httptest.NewRecorder()
	h.HandleEstimateEntropy(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.EntropyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.EntropyBits != 56 {
		t.Errorf("EntropyBits = %d, want 56", resp.EntropyBits)
	}
	if resp.Strength != string(crypto.StrengthFair) {
		t.Errorf("Strength = %q, want %q", resp.Strength, crypto.StrengthFair)
	}
}
