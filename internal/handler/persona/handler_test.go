package persona

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestListLanguages(t *testing.T) {
	r := chi.NewRouter()
	New().RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/languages", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out struct {
		Languages []struct {
			Code string `json:"code"`
			Name string `json:"name"`
		} `json:"languages"`
		Default string `json:"default"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if out.Default != "en" {
		t.Fatalf("unexpected default language: %q", out.Default)
	}
	if len(out.Languages) != 5 {
		t.Fatalf("expected 5 languages, got %d", len(out.Languages))
	}
}
