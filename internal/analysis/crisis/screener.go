package crisis

import "strings"

// crisisPhrases trigger the deterministic safety response instead of a
// model-generated reply. Matching is substring-based with no stemming,
// negation handling, or multilingual coverage.
var crisisPhrases = []string{
	"suicide", "kill myself", "end my life", "want to die",
	"self harm", "cut myself", "hurt myself", "no reason to live",
	"suicidal", "ending it all", "better off dead",
}

// Detect reports whether the message contains any crisis phrase.
// Case-insensitive, deterministic, no side effects.
func Detect(message string) bool {
	normalized := strings.ToLower(message)
	for _, phrase := range crisisPhrases {
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}

const crisisResponse = `I hear that you're going through something really difficult right now.
Your feelings are valid, and I'm glad you're reaching out.

Please know that you don't have to face this alone.
There are people who want to help:

🇮🇳 India:
- iCall: 9152987821
- Vandrevala Foundation: 1860-2662-345
- NIMHANS: 080-46110007

🌍 International:
- International Association for Suicide Prevention:
  https://www.iasp.info/resources/Crisis_Centres/

Would you like to talk about what you're feeling?
I'm here to listen, and there's no rush.`

// Response returns the fixed crisis support message. It never depends on the
// triggering message and never touches the model provider, so this path stays
// available even when the provider is unreachable.
func Response() string {
	return crisisResponse
}
