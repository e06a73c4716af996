package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("ARK_STREAM", "")
	t.Setenv("CHAT_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != ":8000" {
		t.Fatalf("unexpected default addr: %s", cfg.Server.Addr)
	}
	if cfg.Store.Path != "data/aira.db" {
		t.Fatalf("unexpected default store path: %s", cfg.Store.Path)
	}
	if !cfg.AI.StreamResponse {
		t.Fatal("expected streaming enabled by default")
	}
	if cfg.AI.ChatTimeout != 30*time.Second {
		t.Fatalf("unexpected default chat timeout: %s", cfg.AI.ChatTimeout)
	}
	if cfg.AI.Persona != "aira" {
		t.Fatalf("unexpected default persona: %s", cfg.AI.Persona)
	}
}

func TestLoadServerConfigAddrForms(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:9000")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("expected raw addr passthrough, got %s", cfg.Server.Addr)
	}

	t.Setenv("PORT", "bad port")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for whitespace PORT value")
	}
}

func TestAIConfigEnabled(t *testing.T) {
	cfg := AIConfig{Model: "test-model"}
	if cfg.Enabled() {
		t.Fatal("expected disabled without credentials")
	}

	cfg.APIKey = "key"
	if !cfg.Enabled() {
		t.Fatal("expected enabled with api key")
	}

	cfg = AIConfig{Model: "test-model", AccessKey: "ak", SecretKey: "sk"}
	if !cfg.Enabled() {
		t.Fatal("expected enabled with ak/sk pair")
	}

	cfg = AIConfig{APIKey: "key"}
	if cfg.Enabled() {
		t.Fatal("expected disabled without model id")
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	t.Setenv("CHAT_TIMEOUT", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero CHAT_TIMEOUT")
	}

	t.Setenv("CHAT_TIMEOUT", "abc")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric CHAT_TIMEOUT")
	}
}
