package llm

import "strings"

// StripCodeFence removes a leading ``` or ```json fence line and a trailing
// ``` line from a model reply, then trims whitespace. Models are asked for
// bare JSON but still wrap it in markdown often enough that every caller
// needs this. Unfenced input passes through unchanged.
func StripCodeFence(s string) string {
	clean := strings.TrimSpace(s)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSpace(clean)
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
