package engine

import (
	"context"
	"fmt"

	"github.com/sweetpotato0/priorauth/message"
	"github.com/sweetpotato0/priorauth/pkg/telemetry"
	"github.com/sweetpotato0/priorauth/prompt"
	"github.com/sweetpotato0/priorauth/provider"
	"github.com/sweetpotato0/priorauth/question"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// refineAnswer produces a revised answer addressing every improvement
// directive from the critic. The refined value goes through the same type
// coercion as the first pass.
func (e *Engine) refineAnswer(ctx context.Context, patientContext string, q question.Question, original question.Value, improvements []string) (question.Value, string, error) {
	if e.backend == nil {
		return original, "Answer maintained (no completion backend available for refinement)", nil
	}

	var err error
	ctx, span := e.tracer.Start(ctx, "refine_answer",
		trace.WithAttributes(
			attribute.String("question.key", q.Key),
			attribute.Int("improvements", len(improvements)),
		))
	defer func() { telemetry.End(span, err) }()

	raw, err := e.backend.Complete(ctx, &provider.Request{
		Messages: []*message.Message{
			message.NewMessage(message.RoleSystem, prompt.RefinerSystem),
			message.NewMessage(message.RoleUser, prompt.RefinerUser(patientContext, q, original.String(), improvements)),
		},
		Profile:     provider.ProfileStandard,
		Temperature: e.cfg.RefineTemperature,
	})
	if err != nil {
		err = fmt.Errorf("refinement failed: %w", err)
		return question.Value{}, "", err
	}

	payload, err := decodeJSON[refinePayload](raw)
	if err != nil {
		return question.Value{}, "", err
	}

	value, err := coerceRaw(payload.RefinedAnswer, "refined_answer", q.Type)
	if err != nil {
		return question.Value{}, "", err
	}
	return value, payload.Reasoning, nil
}
