package eval

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sweetpotato0/priorauth/engine"
	"github.com/sweetpotato0/priorauth/eval/store"
	"github.com/sweetpotato0/priorauth/pkg/logging"
	"github.com/sweetpotato0/priorauth/pkg/telemetry"
	"github.com/sweetpotato0/priorauth/question"
)

const (
	lowAccuracyThreshold = 0.8
	overconfidenceCutoff = 0.7
	slowResponseMS       = 5000
	shortReasoningLength = 20
	coverageBonus        = 1.2
	highCalibrationError = 0.15
	recommendAccuracyBar = 0.9
	maxTolerableProblems = 3
)

// Harness runs test cases through an answer engine and aggregates the
// outcomes into a Report.
type Harness struct {
	engine  *engine.Engine
	cases   []TestCase
	history store.History
	logger  *slog.Logger
	tracer  trace.Tracer
	now     func() time.Time
}

// HarnessOption configures a Harness.
type HarnessOption func(*Harness)

// WithTestCases replaces the built-in suite.
func WithTestCases(cases []TestCase) HarnessOption {
	return func(h *Harness) {
		h.cases = cases
	}
}

// WithHistory sets the history backend that retains per-case outcomes
// across runs.
func WithHistory(history store.History) HarnessOption {
	return func(h *Harness) {
		h.history = history
	}
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) HarnessOption {
	return func(h *Harness) {
		h.now = now
	}
}

// NewHarness creates an evaluation harness for the given engine. Without
// options it runs the built-in suite and keeps outcomes in a bounded
// in-memory history.
func NewHarness(eng *engine.Engine, opts ...HarnessOption) *Harness {
	h := &Harness{
		engine:  eng,
		cases:   DefaultTestCases(),
		history: store.NewInMemoryHistory(store.DefaultCapacity),
		logger:  logging.WithComponent("evaluation"),
		tracer:  otel.Tracer("github.com/sweetpotato0/priorauth/eval"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// History exposes the configured history backend.
func (h *Harness) History() store.History {
	return h.history
}

// Run evaluates every test case and aggregates the results. A failing
// case is recorded in its Result and never aborts the run; Run returns
// an error only when the context is cancelled.
func (h *Harness) Run(ctx context.Context) (*Report, error) {
	ctx, span := h.tracer.Start(ctx, "full_evaluation_run")
	var err error
	defer func() { telemetry.End(span, err) }()

	results := make([]Result, 0, len(h.cases))
	for i, tc := range h.cases {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		result := h.evaluateCase(ctx, i, tc)
		results = append(results, result)

		if hErr := h.history.Append(ctx, store.Entry{
			TestCaseID:   result.TestCaseID,
			QuestionKey:  result.QuestionKey,
			Passed:       result.IsAcceptable,
			Confidence:   result.Confidence,
			ResponseTime: time.Duration(result.ResponseTimeMS * float64(time.Millisecond)),
			Error:        result.Error,
			CreatedAt:    h.now(),
		}); hErr != nil {
			h.logger.Warn("failed to record evaluation history", "test_case", result.TestCaseID, "error", hErr)
		}
	}

	report := h.buildReport(results)
	span.SetAttributes(
		attribute.Int("eval.total_tests", report.TotalTests),
		attribute.Float64("eval.accuracy", report.Accuracy),
	)
	return report, nil
}

func (h *Harness) evaluateCase(ctx context.Context, index int, tc TestCase) Result {
	id := fmt.Sprintf("%s_%d", tc.Question.Key, index)
	start := h.now()

	answer, err := h.engine.AnswerWithConfidence(ctx, &tc.Patient, tc.Question, nil)
	elapsed := float64(h.now().Sub(start)) / float64(time.Millisecond)

	if err != nil {
		return Result{
			TestCaseID:     id,
			QuestionKey:    tc.Question.Key,
			Expected:       tc.Expected,
			Actual:         question.Text(""),
			ResponseTimeMS: elapsed,
			Error:          err.Error(),
		}
	}

	correct := checkCorrectness(answer.Value, tc.Expected, tc.AcceptableVariations)

	return Result{
		TestCaseID:       id,
		QuestionKey:      tc.Question.Key,
		Expected:         tc.Expected,
		Actual:           answer.Value,
		Confidence:       answer.Confidence,
		IsCorrect:        correct,
		IsAcceptable:     correct || containsValue(tc.AcceptableVariations, answer.Value),
		ReasoningQuality: reasoningQuality(answer.Reasoning, tc.Reasoning),
		ResponseTimeMS:   elapsed,
	}
}

// checkCorrectness accepts exact matches, listed variations, and for text
// answers a numeric match after stripping common units.
func checkCorrectness(actual, expected question.Value, variations []question.Value) bool {
	if actual.Equal(expected) {
		return true
	}
	if containsValue(variations, actual) {
		return true
	}

	if !actual.IsBool() && !expected.IsBool() {
		actualClean := stripUnits(actual.String())
		expectedClean := stripUnits(expected.String())
		actualNum, errA := strconv.ParseFloat(actualClean, 64)
		expectedNum, errE := strconv.ParseFloat(expectedClean, 64)
		if errA == nil && errE == nil && actualNum == expectedNum {
			return true
		}
	}
	return false
}

func stripUnits(s string) string {
	s = strings.ReplaceAll(s, "kg/m²", "")
	s = strings.ReplaceAll(s, "years", "")
	return strings.TrimSpace(s)
}

func containsValue(values []question.Value, v question.Value) bool {
	for _, candidate := range values {
		if candidate.Equal(v) {
			return true
		}
	}
	return false
}

// reasoningQuality scores how well the produced reasoning covers the key
// elements of the reference reasoning, on a 0.0 to 1.0 scale. A coverage
// bonus rewards thorough answers and very short reasoning is penalized.
func reasoningQuality(actual, expected string) float64 {
	if actual == "" {
		return 0.0
	}

	keyElements := strings.Fields(strings.ToLower(expected))
	actualLower := strings.ToLower(actual)

	matched := 0
	for _, element := range keyElements {
		if strings.Contains(actualLower, element) {
			matched++
		}
	}
	coverage := 0.0
	if len(keyElements) > 0 {
		coverage = float64(matched) / float64(len(keyElements))
	}

	quality := math.Min(1.0, coverage*coverageBonus)
	if len(actual) < shortReasoningLength {
		quality *= 0.5
	}
	return quality
}

func (h *Harness) buildReport(results []Result) *Report {
	totalTests := len(results)
	passed := 0
	for _, r := range results {
		if r.IsAcceptable {
			passed++
		}
	}

	accuracy := 0.0
	if totalTests > 0 {
		accuracy = float64(passed) / float64(totalTests)
	}

	confidenceSum, confidenceCount := 0.0, 0
	responseTimeSum := 0.0
	for _, r := range results {
		if r.Confidence > 0 {
			confidenceSum += r.Confidence
			confidenceCount++
		}
		responseTimeSum += r.ResponseTimeMS
	}
	avgConfidence := 0.0
	if confidenceCount > 0 {
		avgConfidence = confidenceSum / float64(confidenceCount)
	}
	avgResponseTime := 0.0
	if totalTests > 0 {
		avgResponseTime = responseTimeSum / float64(totalTests)
	}

	calibrationError := math.Abs(avgConfidence - accuracy)
	categories := h.analyzeByCategory(results)
	problems := identifyProblemAreas(results, categories)

	return &Report{
		Timestamp:             h.now(),
		TotalTests:            totalTests,
		Passed:                passed,
		Failed:                totalTests - passed,
		Accuracy:              accuracy,
		AverageConfidence:     avgConfidence,
		CalibrationError:      calibrationError,
		AverageResponseTimeMS: avgResponseTime,
		ResultsByCategory:     categories,
		ProblemAreas:          problems,
		Recommendations:       generateRecommendations(accuracy, calibrationError, problems),
	}
}

func (h *Harness) analyzeByCategory(results []Result) map[string]CategoryStats {
	categories := make(map[string]CategoryStats)

	for i, result := range results {
		if i >= len(h.cases) {
			break
		}
		for _, tag := range h.cases[i].Tags {
			stats := categories[tag]
			stats.Total++
			if result.IsAcceptable {
				stats.Passed++
			}
			stats.AvgConfidence += result.Confidence
			stats.AvgResponseTime += result.ResponseTimeMS
			categories[tag] = stats
		}
	}

	for tag, stats := range categories {
		if stats.Total > 0 {
			stats.Accuracy = float64(stats.Passed) / float64(stats.Total)
			stats.AvgConfidence /= float64(stats.Total)
			stats.AvgResponseTime /= float64(stats.Total)
		}
		categories[tag] = stats
	}
	return categories
}

func identifyProblemAreas(results []Result, categories map[string]CategoryStats) []string {
	problems := []string{}

	for category, stats := range categories {
		if stats.Accuracy < lowAccuracyThreshold {
			problems = append(problems, fmt.Sprintf("Low accuracy in %s: %.2f%%", category, stats.Accuracy*100))
		}
	}

	overconfident := 0
	for _, r := range results {
		if !r.IsAcceptable && r.Confidence > overconfidenceCutoff {
			overconfident++
		}
	}
	if float64(overconfident) > float64(len(results))*0.1 {
		problems = append(problems, fmt.Sprintf("Model is overconfident on %d incorrect answers", overconfident))
	}

	slow := 0
	for _, r := range results {
		if r.ResponseTimeMS > slowResponseMS {
			slow++
		}
	}
	if slow > 0 {
		problems = append(problems, fmt.Sprintf("%d responses took over 5 seconds", slow))
	}

	return problems
}

func generateRecommendations(accuracy, calibrationError float64, problems []string) []string {
	recommendations := []string{}

	if accuracy < recommendAccuracyBar {
		recommendations = append(recommendations, "Consider adding more few-shot examples for better accuracy")
	}
	if calibrationError > highCalibrationError {
		recommendations = append(recommendations, "Confidence scores need calibration - consider adjusting the critic model")
	}
	if anyContains(problems, "bmi") {
		recommendations = append(recommendations, "Add specific training examples for BMI calculations and interpretations")
	}
	if anyContains(problems, "boolean") {
		recommendations = append(recommendations, "Improve boolean question handling with clearer decision criteria")
	}
	if len(problems) > maxTolerableProblems {
		recommendations = append(recommendations, "Consider fine-tuning the model on medical prior authorization data")
	}

	return recommendations
}

func anyContains(items []string, substr string) bool {
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), substr) {
			return true
		}
	}
	return false
}
