package provider

import (
	"context"

	"github.com/sweetpotato0/priorauth/message"
)

// Profile selects which model class serves a completion request. The mapping
// from profile to concrete model name belongs to the backend adapter.
type Profile string

const (
	ProfileStandard  Profile = "standard"
	ProfileReasoning Profile = "reasoning"
	ProfileCritic    Profile = "critic"
	ProfileFast      Profile = "fast"
)

// Request is one completion round trip. The backend must return the raw text
// of a JSON object; parsing and key validation happen at the call site since
// required keys differ per call type.
type Request struct {
	Messages    []*message.Message
	Profile     Profile
	Temperature float64
}

// Completion is the single pluggable text-completion backend. Implementations
// must be safe for concurrent use.
type Completion interface {
	Complete(ctx context.Context, req *Request) (string, error)
}
