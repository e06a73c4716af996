package persona

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Jadav-Gajanand-19/aiera-backend/internal/model/persona"
	"github.com/Jadav-Gajanand-19/aiera-backend/pkg/utils"
)

// Handler exposes the persona surface: supported response languages.
type Handler struct{}

// New creates the persona handler.
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the persona routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/languages", h.handleListLanguages)
}

func (h *Handler) handleListLanguages(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"languages": persona.Languages(),
		"default":   persona.DefaultLanguage,
	})
}
