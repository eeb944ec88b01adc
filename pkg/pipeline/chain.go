// Package pipeline builds immutable chains of steps behind a condition gate
// and compiles them into a single models.StepFunc.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/tracing"
)

const defaultChainName = "pipeline"

type step struct {
	name string
	fn   models.StepFunc
}

// Chain is an ordered list of steps behind an ordered list of conditions.
// Every builder method returns a new Chain; the receiver is never changed,
// so a chain can be shared and extended in several directions.
type Chain struct {
	name       string
	steps      []step
	conditions []models.ConditionFunc
	logger     ectologger.Logger
	observer   Observer
	traced     bool
}

// Pipe is the empty chain. Compiled on its own it returns its input.
var Pipe = Chain{}

func New() Chain {
	return Chain{}
}

// Name returns the chain name used in logs, errors and metrics.
func (c Chain) Name() string {
	if c.name == "" {
		return defaultChainName
	}
	return c.name
}

// Len is the number of steps.
func (c Chain) Len() int {
	return len(c.steps)
}

func (c Chain) Named(name string) Chain {
	c.name = name
	return c
}

func (c Chain) WithLogger(logger ectologger.Logger) Chain {
	c.logger = logger
	return c
}

func (c Chain) WithObserver(observer Observer) Chain {
	c.observer = observer
	return c
}

// Traced opens a span through pkg/tracing for every invocation.
func (c Chain) Traced() Chain {
	c.traced = true
	return c
}

// Then appends any compilable, including another chain. nil is ignored.
func (c Chain) Then(t models.Compilable) Chain {
	if t == nil {
		return c
	}
	fn := t.Compile()
	if fn == nil {
		return c
	}

	name := "step"
	if nested, ok := t.(Chain); ok {
		name = nested.Name()
	}
	return c.append(name, fn)
}

// Step appends a named custom step. A nil fn is ignored.
func (c Chain) Step(name string, fn models.StepFunc) Chain {
	if fn == nil {
		return c
	}
	return c.append(name, fn)
}

// When adds conditions that must all hold for the steps to run. Calls
// accumulate: conditions from every call are checked in the order added.
// nil predicates are ignored.
func (c Chain) When(predicates ...models.Predicate) Chain {
	conditions := c.conditions[:len(c.conditions):len(c.conditions)]
	for _, p := range predicates {
		if p == nil {
			continue
		}
		conditions = append(conditions, p.Condition())
	}
	c.conditions = conditions
	return c
}

// If is an alias of When.
func (c Chain) If(predicates ...models.Predicate) Chain {
	return c.When(predicates...)
}

// append copies on write. The clipped slice forces a new backing array, so
// siblings built from the same prefix never see each other's steps.
func (c Chain) append(name string, fn models.StepFunc) Chain {
	c.steps = append(c.steps[:len(c.steps):len(c.steps)], step{name: name, fn: fn})
	return c
}

// Compile freezes the chain into a single StepFunc. The returned function
// holds no per-invocation state and may be called concurrently.
//
// The gate runs first. If any condition returns false, returns an error or
// panics, the original value is returned with a nil error and no step runs.
// Otherwise each step receives the previous step's output and the original
// raw values. The first step error stops the chain and is returned as an
// *errors.PipelineError.
func (c Chain) Compile() models.StepFunc {
	name := c.Name()
	steps := c.steps
	conditions := c.conditions
	logger := c.logger
	observer := c.observer
	traced := c.traced

	return func(ctx context.Context, value, raw any) (any, error) {
		if ctx == nil {
			ctx = context.Background()
		}

		start := time.Now()
		invocationID := uuid.NewString()

		var finish func(err error)
		if traced {
			spanCtx, span := tracing.StartSpan(ctx, "pipeline."+name,
				attribute.String("chain", name),
				attribute.String("invocation_id", invocationID),
				attribute.Int("steps", len(steps)),
			)
			ctx = spanCtx
			finish = func(err error) {
				tracing.RecordError(span, err)
				span.End()
			}
		}

		done := func(outcome Outcome, err error) {
			if finish != nil {
				finish(err)
			}
			if observer != nil {
				observer.Completed(name, outcome, time.Since(start))
			}
		}

		for i, condition := range conditions {
			passed, err := evaluate(ctx, condition, value, raw)
			if passed && err == nil {
				continue
			}

			if logger != nil {
				fields := map[string]any{
					"chain":         name,
					"invocation_id": invocationID,
					"condition":     i,
				}
				if err != nil {
					logger.WithContext(ctx).WithError(err).WithFields(fields).Debug("condition failed, skipping chain")
				} else {
					logger.WithContext(ctx).WithFields(fields).Debug("condition not met, skipping chain")
				}
			}
			if observer != nil {
				observer.GateClosed(name, i, err)
			}

			done(OutcomeGateClosed, nil)
			return value, nil
		}

		current := value
		for i, s := range steps {
			result, err := s.fn(ctx, current, raw)
			if err != nil {
				stepID := fmt.Sprintf("%d:%s", i, s.name)
				pipelineErr := errors.WrapPipelineError(err).AddChain(name).AddStep(stepID)

				if logger != nil {
					logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
						"chain":         name,
						"invocation_id": invocationID,
						"step":          stepID,
					}).Error("step failed")
				}
				if observer != nil {
					observer.StepFailed(name, s.name, err)
				}

				done(OutcomeFailed, pipelineErr)
				return nil, pipelineErr
			}
			current = result
		}

		if logger != nil {
			logger.WithContext(ctx).WithFields(map[string]any{
				"chain":         name,
				"invocation_id": invocationID,
				"steps":         len(steps),
				"duration_ms":   time.Since(start).Milliseconds(),
			}).Debug("chain completed")
		}

		done(OutcomeTransformed, nil)
		return current, nil
	}
}

// Bridge turns the chain into a condition: the value is transformed first
// and the result, with the original raw values, is handed to v. A step error
// is returned as (false, err).
func (c Chain) Bridge(v models.Predicate) models.ConditionFunc {
	transform := c.Compile()
	condition := v.Condition()

	return func(ctx context.Context, value, raw any) (bool, error) {
		transformed, err := transform(ctx, value, raw)
		if err != nil {
			return false, err
		}
		return condition(ctx, transformed, raw)
	}
}

func evaluate(ctx context.Context, condition models.ConditionFunc, value, raw any) (passed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			passed = false
			err = fmt.Errorf("condition panicked: %v", r)
		}
	}()

	if condition == nil {
		return false, errors.NewPipelineError("condition is nil")
	}
	return condition(ctx, value, raw)
}
