// Package eval assesses answer quality against known-good cases and turns
// the outcomes into actionable reports.
package eval

import (
	"time"

	"github.com/sweetpotato0/priorauth/patient"
	"github.com/sweetpotato0/priorauth/question"
)

// TestCase pairs a patient chart and question with the answer a correct
// pipeline should produce.
type TestCase struct {
	Patient              patient.Patient   `json:"patient"`
	Question             question.Question `json:"question"`
	Expected             question.Value    `json:"expected_answer"`
	AcceptableVariations []question.Value  `json:"acceptable_variations,omitempty"`
	Reasoning            string            `json:"reasoning"`
	Tags                 []string          `json:"tags,omitempty"`
}

// Result is the outcome of evaluating a single test case. Failures are
// recorded here rather than returned as errors, so one bad case never
// aborts a run.
type Result struct {
	TestCaseID       string         `json:"test_case_id"`
	QuestionKey      string         `json:"question_key"`
	Expected         question.Value `json:"expected"`
	Actual           question.Value `json:"actual"`
	Confidence       float64        `json:"confidence"`
	IsCorrect        bool           `json:"is_correct"`
	IsAcceptable     bool           `json:"is_acceptable"`
	ReasoningQuality float64        `json:"reasoning_quality"`
	ResponseTimeMS   float64        `json:"response_time_ms"`
	Error            string         `json:"error,omitempty"`
}

// CategoryStats aggregates results sharing a tag.
type CategoryStats struct {
	Total           int     `json:"total"`
	Passed          int     `json:"passed"`
	Accuracy        float64 `json:"accuracy"`
	AvgConfidence   float64 `json:"avg_confidence"`
	AvgResponseTime float64 `json:"avg_response_time"`
}

// Report summarizes a full evaluation run.
type Report struct {
	Timestamp             time.Time                `json:"timestamp"`
	TotalTests            int                      `json:"total_tests"`
	Passed                int                      `json:"passed"`
	Failed                int                      `json:"failed"`
	Accuracy              float64                  `json:"accuracy"`
	AverageConfidence     float64                  `json:"average_confidence"`
	CalibrationError      float64                  `json:"confidence_calibration_error"`
	AverageResponseTimeMS float64                  `json:"average_response_time_ms"`
	ResultsByCategory     map[string]CategoryStats `json:"results_by_category"`
	ProblemAreas          []string                 `json:"problem_areas"`
	Recommendations       []string                 `json:"recommendations"`
}
