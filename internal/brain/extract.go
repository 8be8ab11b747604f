package brain

import "strings"

// extractJSON strips the incidental formatting the text model tends to wrap
// around a JSON payload: markdown code fences and any prose outside the
// outermost braces. It is a narrowly-scoped sanitization step, not a parser;
// the result is handed to encoding/json and a parse failure there falls back
// to default content.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			s = s[start : end+1]
		}
	}
	return s
}
