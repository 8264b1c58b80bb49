package ai

import (
	"encoding/json"
	"strings"
)

// stripJSON trims markdown code fences and surrounding prose so the reply can
// be unmarshalled even when the model decorates its JSON.
func stripJSON(reply string) string {
	s := strings.TrimSpace(reply)
	if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		s = strings.TrimPrefix(s, "json")
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return strings.TrimSpace(s)
	}
	end := strings.LastIndexAny(s, "}]")
	if end < start {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(s[start : end+1])
}

// decodeReply unmarshals a model reply into out after stripping decoration.
func decodeReply(op, reply string, out any) error {
	if err := json.Unmarshal([]byte(stripJSON(reply)), out); err != nil {
		return newExternalError(op, err)
	}
	return nil
}
