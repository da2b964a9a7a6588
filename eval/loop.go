package eval

import (
	"context"
	"time"
)

// accuracyTarget is the run accuracy below which improvements are applied.
const accuracyTarget = 0.95

// DefaultCycleInterval is the pause between continuous evaluation runs.
const DefaultCycleInterval = time.Hour

// ImprovementFunc reacts to a completed evaluation report, for example by
// adjusting prompts or few-shot examples.
type ImprovementFunc func(ctx context.Context, report *Report)

// RunContinuously evaluates in a loop, applying improvements whenever a
// run misses the accuracy target. It runs until the context is cancelled
// and returns the cancellation cause. A non-positive interval falls back
// to DefaultCycleInterval.
func (h *Harness) RunContinuously(ctx context.Context, interval time.Duration, improve ImprovementFunc) error {
	if interval <= 0 {
		interval = DefaultCycleInterval
	}

	for {
		report, err := h.Run(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			h.logger.Error("evaluation run failed", "error", err)
		} else {
			h.logger.Info("evaluation completed",
				"accuracy", report.Accuracy,
				"avg_confidence", report.AverageConfidence,
				"problem_areas", report.ProblemAreas,
			)
			if report.Accuracy < accuracyTarget {
				h.applyImprovements(ctx, report, improve)
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

func (h *Harness) applyImprovements(ctx context.Context, report *Report, improve ImprovementFunc) {
	h.logger.Info("applying improvements based on evaluation", "recommendations", report.Recommendations)
	if improve != nil {
		improve(ctx, report)
	}
}
