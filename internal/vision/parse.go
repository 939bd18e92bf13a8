package vision

import (
	"encoding/json"
	"strings"
)

// StripFences removes a markdown code fence wrapper from a model reply.
//
// Models sometimes wrap their JSON in ``` fences despite an explicit
// instruction not to. If the trimmed reply opens with a fence, only the lines
// between the first fence marker (a language tag on it is tolerated) and the
// next fence marker are kept. A reply without fences is returned trimmed but
// otherwise unchanged, so the function is idempotent.
func StripFences(reply string) string {
	reply = strings.TrimSpace(reply)
	if !strings.HasPrefix(reply, "```") {
		return reply
	}

	var kept []string
	inside := false
	for _, line := range strings.Split(reply, "\n") {
		switch {
		case strings.HasPrefix(line, "```") && !inside:
			inside = true
		case strings.HasPrefix(line, "```") && inside:
			return strings.Join(kept, "\n")
		case inside:
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// parseFindResult decodes a model reply into a FindResult, injecting the
// element description when the reply omits it.
func parseFindResult(reply, element string) (*FindResult, error) {
	var result FindResult
	if err := json.Unmarshal([]byte(StripFences(reply)), &result); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	if result.Element == "" {
		result.Element = element
	}
	return &result, nil
}
