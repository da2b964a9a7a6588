package engine

import (
	"encoding/json"

	"github.com/sweetpotato0/priorauth/question"
)

// Answer is the pipeline result for one question: the typed value, the
// confidence assigned by the critic, the generating model's reasoning and,
// for transparency, any improvement directives the critic produced.
type Answer struct {
	Question     question.Question `json:"question"`
	Value        question.Value    `json:"value"`
	Confidence   float64           `json:"confidence"`
	Reasoning    string            `json:"reasoning,omitempty"`
	Improvements []string          `json:"improvements,omitempty"`
}

// actorPayload is the wire shape of a first-pass generation response.
// Answer stays raw so a missing key can be told apart from a null one.
type actorPayload struct {
	Answer         json.RawMessage `json:"answer"`
	Reasoning      string          `json:"reasoning"`
	SupportingData string          `json:"supporting_data"`
}

// criticPayload is the wire shape of a critic evaluation response.
type criticPayload struct {
	ConfidenceScore *float64 `json:"confidence_score"`
	Improvements    []string `json:"improvements"`
	EvaluationNotes string   `json:"evaluation_notes"`
	IsAcceptable    bool     `json:"is_acceptable"`
}

// refinePayload is the wire shape of a refinement response.
type refinePayload struct {
	RefinedAnswer json.RawMessage `json:"refined_answer"`
	Reasoning     string          `json:"reasoning"`
	ChangesMade   []string        `json:"changes_made"`
}
