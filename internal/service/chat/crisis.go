package chat

import "strings"

// crisisKeywords are matched as plain substrings against the normalized
// message text. Order does not matter; any hit flags the message.
var crisisKeywords = []string{
	"suicide", "kill myself", "end it all", "not worth living", "want to die",
	"hurt myself", "self harm", "cutting", "overdose", "jump off",
	"no point", "give up", "can't go on", "better off dead",
}

// normalize trims surrounding whitespace and lowercases the text
func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// DetectCrisis reports whether the text contains crisis language
func DetectCrisis(text string) bool {
	normalized := normalize(text)
	for _, kw := range crisisKeywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}
