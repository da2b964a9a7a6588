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

// generateBaseAnswer produces the first-pass answer for a question. Without a
// backend it falls back to deterministic simulation, which never fails.
func (e *Engine) generateBaseAnswer(ctx context.Context, patientContext string, q question.Question) (question.Value, string, error) {
	if e.backend == nil {
		value, reasoning := e.simulateAnswer(patientContext, q)
		return value, reasoning, nil
	}

	var err error
	ctx, span := e.tracer.Start(ctx, "generate_base_answer",
		trace.WithAttributes(attribute.String("question.key", q.Key)))
	defer func() { telemetry.End(span, err) }()

	var fewShot string
	if e.cfg.EnableFewShot {
		fewShot = prompt.FewShotSection(e.cfg.FewShotExamples)
	}
	userPrompt := prompt.ActorUser(fewShot, patientContext, q)
	span.SetAttributes(attribute.Int("prompt.tokens", prompt.EstimateTokens(userPrompt)))

	profile := provider.ProfileStandard
	if e.cfg.EnableReasoning {
		profile = provider.ProfileReasoning
	}

	raw, err := e.backend.Complete(ctx, &provider.Request{
		Messages: []*message.Message{
			message.NewMessage(message.RoleSystem, prompt.ActorSystem),
			message.NewMessage(message.RoleUser, userPrompt),
		},
		Profile:     profile,
		Temperature: e.cfg.ActorTemperature,
	})
	if err != nil {
		err = fmt.Errorf("actor generation failed: %w", err)
		return question.Value{}, "", err
	}

	payload, err := decodeJSON[actorPayload](raw)
	if err != nil {
		return question.Value{}, "", err
	}

	value, err := coerceRaw(payload.Answer, "answer", q.Type)
	if err != nil {
		return question.Value{}, "", err
	}
	return value, payload.Reasoning, nil
}
