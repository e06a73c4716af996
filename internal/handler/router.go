package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/Jadav-Gajanand-19/aiera-backend/internal/handler/chat"
	personaHandler "github.com/Jadav-Gajanand-19/aiera-backend/internal/handler/persona"
	systemHandler "github.com/Jadav-Gajanand-19/aiera-backend/internal/handler/system"
	middlewarePkg "github.com/Jadav-Gajanand-19/aiera-backend/internal/middleware"
	aiService "github.com/Jadav-Gajanand-19/aiera-backend/internal/service/ai"
)

// NewRouter wires HTTP routes to core services. aiSvc is nil when no model
// credential is configured; the crisis and metadata surfaces keep working.
func NewRouter(aiSvc *aiService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	// Avoid a typed-nil interface when the AI service is absent.
	var chatSvc chatHandler.ChatService
	if aiSvc != nil {
		chatSvc = aiSvc
	}

	systemHandler.New().RegisterRoutes(r)
	personaHandler.New().RegisterRoutes(r)
	chatHandler.New(chatSvc).RegisterRoutes(r)

	return r
}
