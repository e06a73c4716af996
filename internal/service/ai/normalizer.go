package ai

import (
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
)

// FallbackReply replaces replies that normalize to empty text or look like a
// leaked error payload. The conversational surface never exposes provider
// faults directly.
const FallbackReply = "I'm here with you. Would you like to share more?"

// RunResult holds the known provider result shapes: a direct completion
// message, or an ordered message list with the most recent entry last.
// Exactly one of the fields is normally set.
type RunResult struct {
	Message  *schema.Message
	Messages []*schema.Message
}

// Text extracts the reply text from the result. Extraction order: structured
// multi-part content's text, then plain content, then the newest message in
// the list with content, then default stringification. The output is always
// non-empty: empty extractions and strings containing "<Response" or "Error"
// are replaced with FallbackReply. The "Error" substring check is a blunt
// heuristic kept for behavioral compatibility; it can false-positive on
// legitimate replies.
func (r RunResult) Text() string {
	text := r.extract()
	if text == "" || strings.Contains(text, "<Response") || strings.Contains(text, "Error") {
		return FallbackReply
	}
	return text
}

func (r RunResult) extract() string {
	if r.Message != nil {
		return messageText(r.Message)
	}

	for i := len(r.Messages) - 1; i >= 0; i-- {
		msg := r.Messages[i]
		if msg == nil {
			continue
		}
		if text := messageText(msg); text != "" {
			return text
		}
	}

	if len(r.Messages) > 0 {
		return fmt.Sprintf("%v", r.Messages)
	}

	return ""
}

func messageText(msg *schema.Message) string {
	for _, part := range msg.MultiContent {
		if part.Type == schema.ChatMessagePartTypeText && part.Text != "" {
			return part.Text
		}
	}

	if msg.Content != "" {
		return msg.Content
	}

	if len(msg.MultiContent) > 0 {
		return fmt.Sprintf("%v", msg.MultiContent)
	}

	return ""
}
