package question

import (
	"fmt"

	"github.com/sweetpotato0/priorauth/config"
	"github.com/sweetpotato0/priorauth/errors"
)

// Type enumerates the supported answer shapes for a question.
type Type string

const (
	TypeText    Type = "text"
	TypeBoolean Type = "boolean"
)

// Question is one prior-authorization question. Questions are immutable value
// objects; Key identifies the question inside its Set and is referenced by
// visibility conditions of later questions.
type Question struct {
	Type    Type   `json:"type"`
	Key     string `json:"key"`
	Content string `json:"content"`
	// VisibleIf is an optional condition over previously answered keys, e.g.
	// "{bmi_ge_30} = true and {prior_therapy} = false". Empty means always
	// visible.
	VisibleIf string `json:"visible_if,omitempty"`
}

// Validate checks field constraints.
func (q *Question) Validate() error {
	v := config.NewValidator().
		RequireNonEmpty("key", q.Key).
		RequireNonEmpty("content", q.Content).
		ValidateOneOf("type", string(q.Type), string(TypeText), string(TypeBoolean))
	if err := v.Err(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidInput, err)
	}
	return nil
}

// Set is an ordered sequence of questions. Order matters: it determines both
// evaluation sequence and the order answers accumulate for visibility checks.
type Set struct {
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Validate checks the set and every contained question, and rejects duplicate
// keys since visibility conditions address questions by key.
func (s *Set) Validate() error {
	if err := config.NewValidator().RequireNonEmpty("name", s.Name).Err(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidInput, err)
	}
	seen := make(map[string]struct{}, len(s.Questions))
	for i := range s.Questions {
		q := &s.Questions[i]
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
		if _, dup := seen[q.Key]; dup {
			return fmt.Errorf("%w: duplicate question key %q", errors.ErrInvalidInput, q.Key)
		}
		seen[q.Key] = struct{}{}
	}
	return nil
}
