package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/Jadav-Gajanand-19/aiera-backend/internal/config"
	chatmodel "github.com/Jadav-Gajanand-19/aiera-backend/internal/model/chat"
	"github.com/Jadav-Gajanand-19/aiera-backend/internal/model/persona"
	chatstore "github.com/Jadav-Gajanand-19/aiera-backend/internal/service/chat"
	"github.com/Jadav-Gajanand-19/aiera-backend/pkg/utils"
)

// Service binds the model provider, persona catalog, and session store.
// One instance is compiled at startup; per-request agent handles are created
// from it via NewAgent.
type Service struct {
	chatModel model.ChatModel
	personas  persona.Catalog
	store     *chatstore.Store
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService creates the AI service. It fails when the provider credential or
// model configuration is missing.
func NewService(ctx context.Context, personas persona.Catalog, store *chatstore.Store, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		personas:  personas,
		store:     store,
		cfg:       cfg,
		chain:     runnable,
	}, nil
}

// StreamingEnabled indicates whether SSE streaming output is turned on.
func (s *Service) StreamingEnabled() bool {
	return s.cfg.StreamResponse
}

// Agent is a per-request handle bound to one (user, session) store partition
// and a persona resolved for the requested response language.
type Agent struct {
	svc       *Service
	userID    string
	sessionID string
	system    string
}

// NewAgent constructs an agent handle for one chat turn. Unknown language
// codes fall back to English with no language override; an unknown default
// persona id falls back to the first seeded persona.
func (s *Service) NewAgent(userID, sessionID, language string) *Agent {
	selected, ok := s.personas.FindByID(s.cfg.Persona)
	if !ok {
		list := s.personas.List()
		if len(list) > 0 {
			selected = list[0]
		}
	}

	return &Agent{
		svc:       s,
		userID:    userID,
		sessionID: sessionID,
		system:    BuildSystemPrompt(selected, language),
	}
}

// Run executes one conversation turn: load history, invoke the model under
// the configured timeout, persist both turns. The raw provider result is
// returned for normalization by the caller.
func (a *Agent) Run(ctx context.Context, message string) (RunResult, error) {
	input, err := a.buildChainInput(ctx, message)
	if err != nil {
		return RunResult{}, err
	}

	invokeCtx, cancel := context.WithTimeout(ctx, a.svc.cfg.ChatTimeout)
	defer cancel()

	response, err := a.svc.chain.Invoke(invokeCtx, input)
	if err != nil {
		return RunResult{}, fmt.Errorf("failed to run chat chain: %w", err)
	}

	a.SaveExchange(ctx, message, response.Content)

	log.Printf("[ai] generated response for session=%s, length=%d", utils.ShortID(a.sessionID), len(response.Content))
	return RunResult{Message: response}, nil
}

// Stream executes one conversation turn as a chunk stream. The caller is
// responsible for persisting the exchange via SaveExchange once the stream
// has been fully consumed.
func (a *Agent) Stream(ctx context.Context, message string) (*schema.StreamReader[*schema.Message], error) {
	if !a.svc.StreamingEnabled() {
		return nil, fmt.Errorf("streaming disabled in configuration")
	}

	input, err := a.buildChainInput(ctx, message)
	if err != nil {
		return nil, err
	}

	stream, err := a.svc.chain.Stream(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to stream chat chain output: %w", err)
	}

	return stream, nil
}

// SaveExchange appends the user and assistant turns to the session store.
// Persistence failures are logged, not surfaced: the reply was already
// produced and should still reach the user.
func (a *Agent) SaveExchange(ctx context.Context, userMessage, reply string) {
	userTurn := chatmodel.Message{
		UserID:    a.userID,
		SessionID: a.sessionID,
		Sender:    chatmodel.SenderUser,
		Content:   userMessage,
	}
	if err := a.svc.store.AppendTurn(ctx, userTurn); err != nil {
		log.Printf("[ai] failed to save user turn for session=%s: %v", utils.ShortID(a.sessionID), err)
	}

	assistantTurn := chatmodel.Message{
		UserID:    a.userID,
		SessionID: a.sessionID,
		Sender:    chatmodel.SenderAssistant,
		Content:   reply,
	}
	if err := a.svc.store.AppendTurn(ctx, assistantTurn); err != nil {
		log.Printf("[ai] failed to save assistant turn for session=%s: %v", utils.ShortID(a.sessionID), err)
	}
}

func (a *Agent) buildChainInput(ctx context.Context, message string) (map[string]any, error) {
	history, err := a.svc.store.History(ctx, a.userID, a.sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation history: %w", err)
	}

	return map[string]any{
		"system":  a.system,
		"history": buildHistoryMessages(history),
		"query":   message,
	}, nil
}

func buildHistoryMessages(messages []chatmodel.Message) []*schema.Message {
	const historyLimit = 10

	if len(messages) == 0 {
		return nil
	}

	startIdx := 0
	if len(messages) > historyLimit {
		startIdx = len(messages) - historyLimit
	}

	history := make([]*schema.Message, 0, len(messages)-startIdx)
	for _, msg := range messages[startIdx:] {
		switch msg.Sender {
		case chatmodel.SenderUser:
			history = append(history, schema.UserMessage(msg.Content))
		case chatmodel.SenderAssistant:
			history = append(history, schema.AssistantMessage(msg.Content, nil))
		}
	}

	return history
}

// Respond runs one full turn and normalizes the result into reply text.
// This is the entry point used by the HTTP layer.
func (s *Service) Respond(ctx context.Context, userID, sessionID, language, message string) (string, error) {
	agent := s.NewAgent(userID, sessionID, language)
	result, err := agent.Run(ctx, message)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

// StreamReply starts a streamed turn for the SSE endpoint.
func (s *Service) StreamReply(ctx context.Context, userID, sessionID, language, message string) (*schema.StreamReader[*schema.Message], error) {
	return s.NewAgent(userID, sessionID, language).Stream(ctx, message)
}

// CommitExchange persists a completed streamed exchange.
func (s *Service) CommitExchange(ctx context.Context, userID, sessionID, userMessage, reply string) {
	s.NewAgent(userID, sessionID, "").SaveExchange(ctx, userMessage, reply)
}
