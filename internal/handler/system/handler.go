package system

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Jadav-Gajanand-19/aiera-backend/pkg/utils"
)

// Service identity reported on the health and root endpoints.
const (
	ServiceName    = "aira"
	ServiceVersion = "1.0.0"
)

// Handler serves the service metadata endpoints. It holds no dependencies:
// liveness must not hinge on the store or the model provider.
type Handler struct{}

// New creates the system handler.
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the health and root routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.handleHealth)
	r.Get("/", h.handleRoot)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": ServiceName,
		"version": ServiceVersion,
	})
}

func (h *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"name":        "Aira",
		"tagline":     "A gentle emotional support companion",
		"version":     ServiceVersion,
		"description": "Aira is a calm, supportive space where you can express your thoughts and feelings freely.",
		"endpoints": map[string]any{
			"chat": map[string]string{
				"method":      "POST",
				"path":        "/chat",
				"description": "Send a message to Aira",
			},
			"health": map[string]string{
				"method":      "GET",
				"path":        "/health",
				"description": "Check service health",
			},
			"languages": map[string]string{
				"method":      "GET",
				"path":        "/languages",
				"description": "List supported response languages",
			},
		},
	})
}
