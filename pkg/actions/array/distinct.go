package array

import (
	"reflect"

	"github.com/Ramsey-B/reed/pkg/models"
)

// Distinct drops repeated elements, keeping the first occurrence.
func Distinct() models.StepFunc {
	return models.Pure(func(value any) any {
		items, ok := asArray(value)
		if !ok {
			return models.Empty
		}

		distinct := make([]any, 0, len(items))
		for _, item := range items {
			if !containsValue(distinct, item) {
				distinct = append(distinct, item)
			}
		}
		return distinct
	})
}

// Reverse returns a new array with the elements in reverse order.
func Reverse() models.StepFunc {
	return models.Pure(func(value any) any {
		items, ok := asArray(value)
		if !ok {
			return models.Empty
		}

		reversed := make([]any, len(items))
		for i, item := range items {
			reversed[len(items)-1-i] = item
		}
		return reversed
	})
}

func NewArrayDistinctStep(_ string, _ any) (models.StepFunc, error) {
	return Distinct(), nil
}

func NewArrayReverseStep(_ string, _ any) (models.StepFunc, error) {
	return Reverse(), nil
}

func containsValue(items []any, value any) bool {
	for _, item := range items {
		if reflect.DeepEqual(item, value) {
			return true
		}
	}
	return false
}
