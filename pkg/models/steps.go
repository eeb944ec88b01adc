package models

import "context"

// StepFunc is a single unary transformation.
//
// raw is the context ("raw values") the pipeline was invoked with. A step that
// cannot handle its input returns Empty rather than an error; an error aborts
// the enclosing chain.
type StepFunc func(ctx context.Context, value, raw any) (any, error)

// Compile lets a plain StepFunc be used wherever a Compilable is accepted.
func (f StepFunc) Compile() StepFunc {
	return f
}

// Compilable is anything that can be reduced to a single StepFunc.
// Both StepFunc and pipeline.Chain implement it.
type Compilable interface {
	Compile() StepFunc
}

// ConditionFunc is a gate predicate. Returning false or an error both mean
// "do not run".
type ConditionFunc func(ctx context.Context, value, raw any) (bool, error)

// Condition lets a plain ConditionFunc be used wherever a Predicate is accepted.
func (f ConditionFunc) Condition() ConditionFunc {
	return f
}

// Predicate is anything that can be reduced to a ConditionFunc, such as a
// compiled validator.
type Predicate interface {
	Condition() ConditionFunc
}

// Pure adapts a context-free function into a StepFunc.
func Pure(fn func(value any) any) StepFunc {
	return func(_ context.Context, value, _ any) (any, error) {
		return fn(value), nil
	}
}

// WithRaw adapts a function that needs the raw values but cannot fail.
func WithRaw(fn func(value, raw any) any) StepFunc {
	return func(_ context.Context, value, raw any) (any, error) {
		return fn(value, raw), nil
	}
}
