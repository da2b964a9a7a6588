package engine

import (
	"context"
	"fmt"

	"github.com/sweetpotato0/priorauth/errors"
	"github.com/sweetpotato0/priorauth/message"
	"github.com/sweetpotato0/priorauth/pkg/telemetry"
	"github.com/sweetpotato0/priorauth/prompt"
	"github.com/sweetpotato0/priorauth/provider"
	"github.com/sweetpotato0/priorauth/question"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// bypassConfidence is reported when critic evaluation is disabled or no
// backend is configured. It is a deliberate bypass, not a real score.
const bypassConfidence = 0.9

// evaluateAnswer asks the critic model to score a proposed answer along the
// rubric dimensions and returns a confidence in [0,1] plus concrete
// improvement directives. The critic holds no scoring algorithm of its own;
// judgment is entirely delegated to the backend.
func (e *Engine) evaluateAnswer(ctx context.Context, patientContext string, q question.Question, proposed question.Value, reasoning string) (float64, []string, error) {
	if !e.cfg.EnableActorCritic || e.backend == nil {
		return bypassConfidence, nil, nil
	}

	var err error
	ctx, span := e.tracer.Start(ctx, "critic_evaluation",
		trace.WithAttributes(attribute.String("question.key", q.Key)))
	defer func() { telemetry.End(span, err) }()

	raw, err := e.backend.Complete(ctx, &provider.Request{
		Messages: []*message.Message{
			message.NewMessage(message.RoleSystem, prompt.CriticSystem),
			message.NewMessage(message.RoleUser, prompt.CriticUser(patientContext, q, proposed.String(), reasoning)),
		},
		Profile:     provider.ProfileCritic,
		Temperature: e.cfg.CriticTemperature,
	})
	if err != nil {
		err = fmt.Errorf("critic evaluation failed: %w", err)
		return 0, nil, err
	}

	payload, err := decodeJSON[criticPayload](raw)
	if err != nil {
		return 0, nil, err
	}
	if payload.ConfidenceScore == nil {
		err = fmt.Errorf("%w: missing required key %q", errors.ErrMalformedResponse, "confidence_score")
		return 0, nil, err
	}

	confidence := clamp01(*payload.ConfidenceScore)
	span.SetAttributes(attribute.Float64("critic.confidence", confidence))
	return confidence, payload.Improvements, nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
