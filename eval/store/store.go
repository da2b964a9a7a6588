package store

import (
	"context"
	"time"
)

// Entry is one flattened evaluation outcome kept in history. It carries the
// fields needed for trend inspection rather than the full result, so remote
// stores stay cheap.
type Entry struct {
	TestCaseID   string        `json:"test_case_id"`
	QuestionKey  string        `json:"question_key"`
	Passed       bool          `json:"passed"`
	Confidence   float64       `json:"confidence"`
	ResponseTime time.Duration `json:"response_time"`
	Error        string        `json:"error,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// History records past evaluation outcomes. Implementations must be bounded
// (old entries are evicted, never accumulated without limit) and safe for
// concurrent use.
type History interface {
	// Append records an entry, evicting the oldest one when full.
	Append(ctx context.Context, entry Entry) error

	// Recent returns up to n entries, most recent first.
	Recent(ctx context.Context, n int) ([]Entry, error)

	// Len returns the number of retained entries.
	Len(ctx context.Context) (int, error)
}
