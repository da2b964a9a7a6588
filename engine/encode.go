package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sweetpotato0/priorauth/errors"
	"github.com/sweetpotato0/priorauth/question"
)

// decodeJSON unmarshals raw model output into T after stripping code fences.
// Parse failures are reported as ErrMalformedResponse.
func decodeJSON[T any](raw string) (*T, error) {
	clean := sanitizeJSON(raw)
	var out T
	if err := json.Unmarshal([]byte(clean), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedResponse, err)
	}
	return &out, nil
}

func sanitizeJSON(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = trimmed[3:]
		trimmed = strings.TrimPrefix(trimmed, "json")
		trimmed = strings.TrimPrefix(trimmed, "JSON")
		if idx := strings.Index(trimmed, "```"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
	}
	return strings.TrimSpace(trimmed)
}

// coerceRaw converts the raw JSON answer field into a typed Value for the
// question. A missing key is a malformed response.
func coerceRaw(raw json.RawMessage, key string, qtype question.Type) (question.Value, error) {
	if raw == nil {
		return question.Value{}, fmt.Errorf("%w: missing required key %q", errors.ErrMalformedResponse, key)
	}
	var val any
	if err := json.Unmarshal(raw, &val); err != nil {
		return question.Value{}, fmt.Errorf("%w: %v", errors.ErrMalformedResponse, err)
	}
	return question.Coerce(val, qtype), nil
}
