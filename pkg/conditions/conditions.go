// Package conditions provides predicates for the pipeline gate.
package conditions

import (
	"context"
	"reflect"

	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

// IsNil holds for null values.
func IsNil() models.ConditionFunc {
	return func(_ context.Context, value, _ any) (bool, error) {
		return models.Is(value, models.KindNull), nil
	}
}

// IsEmpty holds for the Empty sentinel.
func IsEmpty() models.ConditionFunc {
	return func(_ context.Context, value, _ any) (bool, error) {
		return models.IsEmpty(value), nil
	}
}

// IsPresent holds for anything other than null and Empty.
func IsPresent() models.ConditionFunc {
	return func(_ context.Context, value, _ any) (bool, error) {
		return !models.Is(value, models.KindNull, models.KindEmpty), nil
	}
}

// Equals compares the value with expected. Numbers of any Go type compare
// by value.
func Equals(expected any) models.ConditionFunc {
	return func(_ context.Context, value, _ any) (bool, error) {
		return equal(value, expected), nil
	}
}

// RefEquals compares the raw value at path with expected.
func RefEquals(path string, expected any) models.ConditionFunc {
	return func(_ context.Context, _, raw any) (bool, error) {
		return equal(utils.Ref(path, raw), expected), nil
	}
}

// RefExists holds when path resolves in the raw values, even to null.
func RefExists(path string) models.ConditionFunc {
	return func(_ context.Context, _, raw any) (bool, error) {
		_, ok := utils.ResolveRef(path, raw)
		return ok, nil
	}
}

// Tag checks the value against a go-playground/validator tag such as
// "required,email". A failed check returns false with the validation error.
func Tag(tag string) models.ConditionFunc {
	return func(_ context.Context, value, _ any) (bool, error) {
		if err := utils.ValidateValue(unwrapEmpty(value), tag); err != nil {
			return false, err
		}
		return true, nil
	}
}

// RefTag is Tag applied to the raw value at path.
func RefTag(path, tag string) models.ConditionFunc {
	return func(_ context.Context, _, raw any) (bool, error) {
		if err := utils.ValidateValue(unwrapEmpty(utils.Ref(path, raw)), tag); err != nil {
			return false, err
		}
		return true, nil
	}
}

// Not inverts p. An error from p still fails.
func Not(p models.Predicate) models.ConditionFunc {
	condition := p.Condition()
	return func(ctx context.Context, value, raw any) (bool, error) {
		passed, err := condition(ctx, value, raw)
		if err != nil {
			return false, err
		}
		return !passed, nil
	}
}

// All holds when every predicate holds.
func All(predicates ...models.Predicate) models.ConditionFunc {
	conditions := make([]models.ConditionFunc, len(predicates))
	for i, p := range predicates {
		conditions[i] = p.Condition()
	}

	return func(ctx context.Context, value, raw any) (bool, error) {
		for _, condition := range conditions {
			passed, err := condition(ctx, value, raw)
			if err != nil || !passed {
				return false, err
			}
		}
		return true, nil
	}
}

// Any holds when at least one predicate holds. Errors count as false.
func Any(predicates ...models.Predicate) models.ConditionFunc {
	conditions := make([]models.ConditionFunc, len(predicates))
	for i, p := range predicates {
		conditions[i] = p.Condition()
	}

	return func(ctx context.Context, value, raw any) (bool, error) {
		var lastErr error
		for _, condition := range conditions {
			passed, err := condition(ctx, value, raw)
			if err == nil && passed {
				return true, nil
			}
			if err != nil {
				lastErr = err
			}
		}
		return false, lastErr
	}
}

func equal(a, b any) bool {
	if models.Is(a, models.KindNumber) && models.Is(b, models.KindNumber) {
		return utils.ToNumber(a) == utils.ToNumber(b)
	}
	return reflect.DeepEqual(a, b)
}

// unwrapEmpty lets "required" reject Empty the same way it rejects nil.
func unwrapEmpty(value any) any {
	if models.IsEmpty(value) {
		return nil
	}
	return value
}
