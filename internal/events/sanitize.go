package events

import "strings"

// redactedKeys are field names whose values never leave the process.
// Matching is case-insensitive; the scrub is flat, not recursive.
var redactedKeys = map[string]struct{}{
	"api_key":          {},
	"apikey":           {},
	"deepgram_api_key": {},
	"authorization":    {},
	"token":            {},
}

// Sanitize returns a copy of params with credential-style fields replaced
// by a redaction marker.
func Sanitize(params map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(params))
	for k, v := range params {
		if _, ok := redactedKeys[strings.ToLower(k)]; ok {
			out[k] = "***"
			continue
		}
		out[k] = v
	}
	return out
}
