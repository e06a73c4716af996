package chat_test

import (
	"context"
	"path/filepath"
	"testing"

	chatmodel "github.com/Jadav-Gajanand-19/aiera-backend/internal/model/chat"
	chat "github.com/Jadav-Gajanand-19/aiera-backend/internal/service/chat"
)

func openTestStore(t *testing.T) *chat.Store {
	t.Helper()
	store, err := chat.Open(filepath.Join(t.TempDir(), "data", "aira.db"))
	if err != nil {
		t.Fatalf("Open err: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreAppendAndHistory(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	turns := []string{"hello", "hey, how are you doing?", "pretty good today"}
	for i, content := range turns {
		sender := chatmodel.SenderUser
		if i%2 == 1 {
			sender = chatmodel.SenderAssistant
		}
		err := store.AppendTurn(ctx, chatmodel.Message{
			UserID:    "anonymous",
			SessionID: "s-1",
			Sender:    sender,
			Content:   content,
		})
		if err != nil {
			t.Fatalf("AppendTurn err: %v", err)
		}
	}

	history, err := store.History(ctx, "anonymous", "s-1")
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if len(history) != len(turns) {
		t.Fatalf("unexpected history length: got %d want %d", len(history), len(turns))
	}
	for i, msg := range history {
		if msg.Content != turns[i] {
			t.Fatalf("turn %d out of order: got %q want %q", i, msg.Content, turns[i])
		}
		if msg.ID == "" {
			t.Fatalf("turn %d missing generated id", i)
		}
		if msg.CreatedAt.IsZero() {
			t.Fatalf("turn %d missing timestamp", i)
		}
	}
}

func TestStoreRegeneratesMessageID(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	err := store.AppendTurn(ctx, chatmodel.Message{
		ID:        "caller-supplied",
		UserID:    "anonymous",
		SessionID: "s-1",
		Sender:    chatmodel.SenderUser,
		Content:   "hello",
	})
	if err != nil {
		t.Fatalf("AppendTurn err: %v", err)
	}

	history, err := store.History(ctx, "anonymous", "s-1")
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("unexpected history length: %d", len(history))
	}
	if history[0].ID == "caller-supplied" || history[0].ID == "" {
		t.Fatalf("store must assign its own message id, got %q", history[0].ID)
	}
}

func TestStoreUnknownSessionEmptyHistory(t *testing.T) {
	store := openTestStore(t)

	history, err := store.History(context.Background(), "anonymous", "never-used")
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %d messages", len(history))
	}
}

func TestStorePartitionsByUserAndSession(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	pairs := []struct{ user, session, content string }{
		{"alice", "s-1", "from alice s1"},
		{"alice", "s-2", "from alice s2"},
		{"bob", "s-1", "from bob s1"},
	}
	for _, p := range pairs {
		err := store.AppendTurn(ctx, chatmodel.Message{
			UserID:    p.user,
			SessionID: p.session,
			Sender:    chatmodel.SenderUser,
			Content:   p.content,
		})
		if err != nil {
			t.Fatalf("AppendTurn err: %v", err)
		}
	}

	for _, p := range pairs {
		history, err := store.History(ctx, p.user, p.session)
		if err != nil {
			t.Fatalf("History err: %v", err)
		}
		if len(history) != 1 || history[0].Content != p.content {
			t.Fatalf("partition %s/%s leaked: %+v", p.user, p.session, history)
		}
	}
}

func TestStoreRejectsMissingKeys(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	err := store.AppendTurn(ctx, chatmodel.Message{SessionID: "s-1", Content: "x"})
	if err != chat.ErrUserRequired {
		t.Fatalf("expected ErrUserRequired, got %v", err)
	}

	err = store.AppendTurn(ctx, chatmodel.Message{UserID: "u", Content: "x"})
	if err != chat.ErrSessionRequired {
		t.Fatalf("expected ErrSessionRequired, got %v", err)
	}

	if _, err := store.History(ctx, "", "s-1"); err != chat.ErrUserRequired {
		t.Fatalf("expected ErrUserRequired, got %v", err)
	}
}
