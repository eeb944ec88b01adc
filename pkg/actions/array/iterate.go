package array

import (
	"context"

	"github.com/Ramsey-B/reed/pkg/models"
)

// Map replaces each element with fn's result in a new array.
func Map(fn func(item any, index int, items []any) any) models.StepFunc {
	return models.Pure(func(value any) any {
		items, ok := asArray(value)
		if !ok {
			return models.Empty
		}

		result := make([]any, len(items))
		for i, item := range items {
			result[i] = fn(item, i, items)
		}
		return result
	})
}

// Filter keeps the elements keep accepts. An error from keep drops the
// element, the same as false.
func Filter(keep func(ctx context.Context, item any, index int, items []any) (bool, error)) models.StepFunc {
	return func(ctx context.Context, value, _ any) (any, error) {
		items, ok := asArray(value)
		if !ok {
			return models.Empty, nil
		}

		kept := make([]any, 0, len(items))
		for i, item := range items {
			passed, err := keep(ctx, item, i, items)
			if err != nil || !passed {
				continue
			}
			kept = append(kept, item)
		}
		return kept, nil
	}
}

// FilterBy keeps the elements that satisfy p. Each element is checked
// against the raw values the pipeline was invoked with.
func FilterBy(p models.Predicate) models.StepFunc {
	condition := p.Condition()
	return func(ctx context.Context, value, raw any) (any, error) {
		keep := func(ctx context.Context, item any, _ int, _ []any) (bool, error) {
			return condition(ctx, item, raw)
		}
		return Filter(keep)(ctx, value, raw)
	}
}

// Reduce folds the array left to right, seeded with the first element.
// An empty array gives Empty.
func Reduce(fn func(acc, item any, index int, items []any) any) models.StepFunc {
	return models.Pure(func(value any) any {
		items, ok := asArray(value)
		if !ok || len(items) == 0 {
			return models.Empty
		}

		acc := items[0]
		for i := 1; i < len(items); i++ {
			acc = fn(acc, items[i], i, items)
		}
		return acc
	})
}
