package question

// Answers is an insertion-ordered log of resolved question keys and their
// values. Batch processing appends to it as questions resolve; the order is
// preserved so prompts can replay earlier answers in the sequence they were
// produced. Answers is not safe for concurrent use; each batch owns its own.
type Answers struct {
	keys   []string
	values map[string]Value
}

// NewAnswers creates an empty answer log.
func NewAnswers() *Answers {
	return &Answers{values: make(map[string]Value)}
}

// Set records the value for a key, preserving first-insertion order on
// overwrite.
func (a *Answers) Set(key string, value Value) {
	if a.values == nil {
		a.values = make(map[string]Value)
	}
	if _, exists := a.values[key]; !exists {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Get returns the value for a key and whether it has been answered.
func (a *Answers) Get(key string) (Value, bool) {
	if a == nil || a.values == nil {
		return Value{}, false
	}
	v, ok := a.values[key]
	return v, ok
}

// Len returns the number of answered keys.
func (a *Answers) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Keys returns the answered keys in insertion order.
func (a *Answers) Keys() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.keys...)
}
