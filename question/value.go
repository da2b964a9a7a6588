package question

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Value is a tagged union holding the answer to a question: a string for text
// questions, a native bool for boolean questions. Using a tagged variant keyed
// by the question's declared type keeps string "true"/"false" values from
// leaking across the answer boundary.
type Value struct {
	kind    Type
	text    string
	boolean bool
}

// Text wraps a string answer.
func Text(s string) Value {
	return Value{kind: TypeText, text: s}
}

// Bool wraps a boolean answer.
func Bool(b bool) Value {
	return Value{kind: TypeBoolean, boolean: b}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Type {
	if v.kind == "" {
		return TypeText
	}
	return v.kind
}

// IsBool reports whether the value is the boolean variant.
func (v Value) IsBool() bool { return v.Kind() == TypeBoolean }

// Bool returns the boolean payload; false for text values.
func (v Value) Bool() bool {
	return v.Kind() == TypeBoolean && v.boolean
}

// String renders the value for prompts, logs and condition evaluation.
func (v Value) String() string {
	if v.Kind() == TypeBoolean {
		if v.boolean {
			return "true"
		}
		return "false"
	}
	return v.text
}

// Equal compares two values including their variant.
func (v Value) Equal(other Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	if v.Kind() == TypeBoolean {
		return v.boolean == other.boolean
	}
	return v.text == other.text
}

// MarshalJSON emits the native payload: a JSON bool for boolean values and a
// JSON string for text values.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind() == TypeBoolean {
		return json.Marshal(v.boolean)
	}
	return json.Marshal(v.text)
}

// UnmarshalJSON accepts a JSON bool or string.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case bool:
		*v = Bool(t)
	case string:
		*v = Text(t)
	default:
		return fmt.Errorf("answer value must be string or bool, got %T", raw)
	}
	return nil
}

// Coerce converts a decoded JSON answer field into a Value matching the
// question type. Backends occasionally return booleans as strings or numbers;
// the same conversion applies everywhere a model-origin value crosses into the
// typed answer model.
func Coerce(raw any, qtype Type) Value {
	if qtype == TypeBoolean {
		switch t := raw.(type) {
		case bool:
			return Bool(t)
		case string:
			switch strings.ToLower(strings.TrimSpace(t)) {
			case "true", "yes", "1":
				return Bool(true)
			default:
				return Bool(false)
			}
		case float64:
			return Bool(t != 0)
		default:
			return Bool(false)
		}
	}
	switch t := raw.(type) {
	case string:
		return Text(t)
	case nil:
		return Text("")
	default:
		return Text(fmt.Sprintf("%v", t))
	}
}
