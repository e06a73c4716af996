package ai

import (
	"strings"
	"testing"

	"github.com/Jadav-Gajanand-19/aiera-backend/internal/model/persona"
)

func defaultPersona(t *testing.T) persona.Persona {
	t.Helper()
	catalog := persona.NewMemoryCatalog(persona.Seed())
	p, ok := catalog.FindByID("aira")
	if !ok {
		t.Fatal("default persona missing from seed data")
	}
	return p
}

func TestBuildSystemPromptEnglishHasNoOverride(t *testing.T) {
	p := defaultPersona(t)

	got := BuildSystemPrompt(p, "en")
	if got != p.Instructions {
		t.Fatal("english prompt must be the bare persona instructions")
	}
}

func TestBuildSystemPromptUnknownCodeDefaultsToEnglish(t *testing.T) {
	p := defaultPersona(t)

	got := BuildSystemPrompt(p, "xx")
	if got != p.Instructions {
		t.Fatal("unknown language code must behave like english")
	}
}

func TestBuildSystemPromptLanguageOverride(t *testing.T) {
	p := defaultPersona(t)

	got := BuildSystemPrompt(p, "hi")
	if !strings.HasPrefix(got, p.Instructions) {
		t.Fatal("persona instructions must lead the prompt")
	}
	if !strings.Contains(got, "Hindi (हिंदी)") {
		t.Fatal("prompt must name the response language")
	}
	if !strings.Contains(got, "ALWAYS respond in") {
		t.Fatal("prompt must carry the language override instruction")
	}
}
