package ai

import (
	"fmt"
	"strings"

	"github.com/Jadav-Gajanand-19/aiera-backend/internal/model/persona"
)

// BuildSystemPrompt assembles the system prompt for a persona and response
// language. English (or unknown codes, which resolve to English) carries no
// language override.
func BuildSystemPrompt(p persona.Persona, language string) string {
	instruction := languageInstruction(language)
	if instruction == "" {
		return p.Instructions
	}

	var builder strings.Builder
	builder.WriteString(p.Instructions)
	builder.WriteString("\n\n")
	builder.WriteString(instruction)
	return builder.String()
}

func languageInstruction(language string) string {
	if language == "" || language == persona.DefaultLanguage {
		return ""
	}

	name := persona.LanguageName(language)
	if name == "English" {
		// Unknown codes fall back to the base persona untouched.
		return ""
	}

	return fmt.Sprintf(`IMPORTANT: You MUST respond in %s.
The user may write in any language, but you should ALWAYS respond in %s.
If the language is Hindi, Telugu, Tamil, or Kannada, use the native script.`, name, name)
}
