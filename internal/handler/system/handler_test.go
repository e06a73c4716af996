package system

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New().RegisterRoutes(r)
	return r
}

func TestHealthAlwaysHealthy(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if out["status"] != "healthy" {
		t.Fatalf("unexpected status: %q", out["status"])
	}
	if out["service"] != ServiceName || out["version"] != ServiceVersion {
		t.Fatalf("unexpected identity: %+v", out)
	}
}

func TestRootMetadata(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out struct {
		Name      string                       `json:"name"`
		Tagline   string                       `json:"tagline"`
		Endpoints map[string]map[string]string `json:"endpoints"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if out.Name != "Aira" {
		t.Fatalf("unexpected name: %q", out.Name)
	}
	if out.Tagline == "" {
		t.Fatal("tagline must be present")
	}
	if out.Endpoints["chat"]["path"] != "/chat" {
		t.Fatalf("endpoints map must describe /chat, got %+v", out.Endpoints)
	}
}
