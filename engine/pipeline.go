package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sweetpotato0/priorauth/patient"
	"github.com/sweetpotato0/priorauth/pkg/logging"
	"github.com/sweetpotato0/priorauth/prompt"
	"github.com/sweetpotato0/priorauth/provider"
	"github.com/sweetpotato0/priorauth/question"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Engine runs the actor-critic answer pipeline for prior-authorization
// questions. For each question it sequences:
//
//  1. actor: first-pass answer generation
//  2. critic: rubric scoring to a confidence in [0,1]
//  3. refiner: one bounded refinement pass when the critic found concrete
//     problems, followed by a final re-score
//
// The stages are strictly sequential since each consumes the previous one's
// output. A nil backend switches the whole pipeline into deterministic
// simulation mode so the system stays exercisable without credentials.
type Engine struct {
	cfg     *Config
	backend provider.Completion
	logger  *slog.Logger
	tracer  trace.Tracer
}

// New creates an answer engine. backend may be nil, which enables the
// simulation fallback.
func New(backend provider.Completion, opts ...Option) *Engine {
	cfg := applyOptions(opts)
	e := &Engine{
		cfg:     cfg,
		backend: backend,
		logger:  logging.WithComponent("answer_engine").With("pipeline", cfg.Name),
		tracer:  otel.Tracer("github.com/sweetpotato0/priorauth/engine"),
	}
	e.logger.Info("answer engine initialised",
		"simulated", backend == nil,
		"actor_critic", cfg.EnableActorCritic,
		"few_shot", cfg.EnableFewShot,
		"confidence_scores", cfg.EnableConfidence,
	)
	return e
}

// Simulated reports whether the engine runs without a live backend.
func (e *Engine) Simulated() bool {
	return e.backend == nil
}

// AnswerWithConfidence answers a single question from the patient record and
// any previously resolved answers. prior may be nil.
func (e *Engine) AnswerWithConfidence(ctx context.Context, p *patient.Patient, q question.Question, prior *question.Answers) (*Answer, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("patient: %w", err)
	}
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("question: %w", err)
	}

	patientContext := prompt.PatientContext(p, e.cfg.now())
	if prior != nil {
		patientContext = prompt.AppendPriorAnswers(patientContext, prior)
	}

	value, reasoning, err := e.generateBaseAnswer(ctx, patientContext, q)
	if err != nil {
		return nil, err
	}

	confidence, improvements, err := e.evaluateAnswer(ctx, patientContext, q, value, reasoning)
	if err != nil {
		return nil, err
	}

	refined := false
	if confidence < e.cfg.ConfidenceThreshold && len(improvements) > 0 && e.cfg.EnableActorCritic {
		refined = true
		e.logger.Info("refining answer",
			"question_key", q.Key,
			"confidence", confidence,
			"improvements", len(improvements),
		)
		value, reasoning, err = e.refineAnswer(ctx, patientContext, q, value, improvements)
		if err != nil {
			return nil, err
		}
		// The re-score is final: refinement is bounded to one attempt.
		confidence, _, err = e.evaluateAnswer(ctx, patientContext, q, value, reasoning)
		if err != nil {
			return nil, err
		}
	}

	if !e.cfg.EnableConfidence {
		confidence = 1.0
	}

	e.logger.Debug("question answered",
		"question_key", q.Key,
		"confidence", confidence,
		"refined", refined,
	)

	ans := &Answer{
		Question:   q,
		Value:      value,
		Confidence: confidence,
		Reasoning:  reasoning,
	}
	if len(improvements) > 0 {
		ans.Improvements = improvements
	}
	return ans, nil
}

// ProcessBatch answers a question sequence in order, carrying forward the
// accumulated answers for visibility conditions and contextual grounding.
// Questions whose visibility condition does not hold are skipped and omitted
// from the result. Resolution is deliberately sequential: later questions
// depend on earlier answers.
func (e *Engine) ProcessBatch(ctx context.Context, p *patient.Patient, questions []question.Question) ([]*Answer, error) {
	answered := question.NewAnswers()
	answers := make([]*Answer, 0, len(questions))

	for _, q := range questions {
		if !question.Visible(q.VisibleIf, answered) {
			e.logger.Debug("question skipped by visibility condition",
				"question_key", q.Key,
				"condition", q.VisibleIf,
			)
			continue
		}

		ans, err := e.AnswerWithConfidence(ctx, p, q, answered)
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", q.Key, err)
		}
		answers = append(answers, ans)
		answered.Set(q.Key, ans.Value)
	}

	e.logger.Info("batch processed",
		"patient", p.FullName(),
		"questions", len(questions),
		"answered", len(answers),
	)
	return answers, nil
}
