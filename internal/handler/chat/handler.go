package chat

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"unicode/utf8"

	"github.com/cloudwego/eino/schema"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Jadav-Gajanand-19/aiera-backend/internal/analysis/crisis"
	"github.com/Jadav-Gajanand-19/aiera-backend/internal/service/ai"
	"github.com/Jadav-Gajanand-19/aiera-backend/pkg/utils"
)

const (
	maxMessageLength = 5000
	anonymousUserID  = "anonymous"

	// errReply is the only error detail ever exposed on the chat surface.
	errReply = "I'm having trouble responding right now. Please try again in a moment."
)

// ChatService produces model-backed replies for chat turns.
type ChatService interface {
	Respond(ctx context.Context, userID, sessionID, language, message string) (string, error)
	StreamReply(ctx context.Context, userID, sessionID, language, message string) (*schema.StreamReader[*schema.Message], error)
	CommitExchange(ctx context.Context, userID, sessionID, userMessage, reply string)
	StreamingEnabled() bool
}

// ChatRequest is the POST /chat payload.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Language  string `json:"language,omitempty"`
}

// ChatResponse is the POST /chat reply.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	IsCrisis  bool   `json:"is_crisis"`
}

// Handler serves the chat endpoints.
type Handler struct {
	ai ChatService
}

// New creates the chat handler. ai may be nil when no model credential is
// configured; the crisis path keeps working, the normal branch returns 500.
func New(ai ChatService) *Handler {
	return &Handler{ai: ai}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/chat/stream", h.handleChatStream)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if detail, ok := validateMessage(req.Message); !ok {
		utils.RespondError(w, http.StatusBadRequest, detail)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	userID := req.UserID
	if userID == "" {
		userID = anonymousUserID
	}

	log.Printf("[chat] request user=%s session=%s", userID, utils.ShortID(sessionID))

	// Crisis screening runs before anything touches the model provider, so
	// this branch stays available even when the provider is down.
	if crisis.Detect(req.Message) {
		log.Printf("[chat] crisis detected for session=%s", utils.ShortID(sessionID))
		utils.RespondJSON(w, http.StatusOK, ChatResponse{
			Response:  crisis.Response(),
			SessionID: sessionID,
			IsCrisis:  true,
		})
		return
	}

	if h.ai == nil {
		log.Printf("[chat] model provider not configured, rejecting session=%s", utils.ShortID(sessionID))
		utils.RespondError(w, http.StatusInternalServerError, errReply)
		return
	}

	reply, err := h.ai.Respond(r.Context(), userID, sessionID, req.Language, req.Message)
	if err != nil {
		log.Printf("[chat] failed to generate response for session=%s: %v", utils.ShortID(sessionID), err)
		utils.RespondError(w, http.StatusInternalServerError, errReply)
		return
	}

	log.Printf("[chat] response sent for session=%s", utils.ShortID(sessionID))
	utils.RespondJSON(w, http.StatusOK, ChatResponse{
		Response:  reply,
		SessionID: sessionID,
		IsCrisis:  false,
	})
}

// StreamChunk is one SSE frame on the streaming chat endpoint.
type StreamChunk struct {
	Event     string `json:"event"`
	Content   string `json:"content,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	IsCrisis  bool   `json:"isCrisis,omitempty"`
	Finished  bool   `json:"finished,omitempty"`
	Error     string `json:"error,omitempty"`
}

func (h *Handler) handleChatStream(w http.ResponseWriter, r *http.Request) {
	message := r.URL.Query().Get("message")
	if detail, ok := validateMessage(message); !ok {
		utils.RespondError(w, http.StatusBadRequest, detail)
		return
	}

	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		userID = anonymousUserID
	}
	language := r.URL.Query().Get("language")

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	utils.SetupSSEHeaders(w)
	utils.SendSSEChunk(w, flusher, StreamChunk{Event: "start", SessionID: sessionID})

	if crisis.Detect(message) {
		log.Printf("[chat] crisis detected for session=%s", utils.ShortID(sessionID))
		utils.SendSSEChunk(w, flusher, StreamChunk{
			Event:     "message",
			SessionID: sessionID,
			Content:   crisis.Response(),
			IsCrisis:  true,
		})
		utils.SendSSEChunk(w, flusher, StreamChunk{Event: "end", SessionID: sessionID, Finished: true})
		return
	}

	if h.ai == nil || !h.ai.StreamingEnabled() {
		utils.SendSSEChunk(w, flusher, StreamChunk{Event: "error", SessionID: sessionID, Error: errReply})
		return
	}

	stream, err := h.ai.StreamReply(r.Context(), userID, sessionID, language, message)
	if err != nil {
		log.Printf("[chat] failed to start stream for session=%s: %v", utils.ShortID(sessionID), err)
		utils.SendSSEChunk(w, flusher, StreamChunk{Event: "error", SessionID: sessionID, Error: errReply})
		return
	}
	defer stream.Close()

	chunks := make([]*schema.Message, 0, 8)
	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			log.Printf("[chat] stream receive failed for session=%s: %v", utils.ShortID(sessionID), recvErr)
			utils.SendSSEChunk(w, flusher, StreamChunk{Event: "error", SessionID: sessionID, Error: errReply})
			return
		}
		if chunk == nil {
			continue
		}

		chunks = append(chunks, chunk)
		if chunk.Content != "" {
			utils.SendSSEChunk(w, flusher, StreamChunk{
				Event:     "delta",
				SessionID: sessionID,
				Content:   chunk.Content,
			})
		}
	}

	full, err := schema.ConcatMessages(chunks)
	if err != nil {
		log.Printf("[chat] failed to concat stream chunks for session=%s: %v", utils.ShortID(sessionID), err)
		utils.SendSSEChunk(w, flusher, StreamChunk{Event: "error", SessionID: sessionID, Error: errReply})
		return
	}

	reply := ai.RunResult{Message: full}.Text()
	h.ai.CommitExchange(r.Context(), userID, sessionID, message, reply)

	utils.SendSSEChunk(w, flusher, StreamChunk{
		Event:     "message",
		SessionID: sessionID,
		Content:   reply,
	})
	utils.SendSSEChunk(w, flusher, StreamChunk{Event: "end", SessionID: sessionID, Finished: true})
	log.Printf("[chat] stream completed for session=%s", utils.ShortID(sessionID))
}

func validateMessage(message string) (string, bool) {
	if message == "" {
		return "message is required", false
	}
	if utf8.RuneCountInString(message) > maxMessageLength {
		return "message must be at most 5000 characters", false
	}
	return "", true
}
