package object

import (
	"sort"
	"strconv"

	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

// Keys lists the keys of an object in sorted order, or the indexes of an
// array as strings.
func Keys() models.StepFunc {
	return models.Pure(func(value any) any {
		switch models.KindOf(value) {
		case models.KindObject:
			obj, ok := utils.ToObject(value)
			if !ok {
				return models.Empty
			}
			keys := sortedKeys(obj)
			result := make([]any, len(keys))
			for i, key := range keys {
				result[i] = key
			}
			return result
		case models.KindArray:
			items, _ := utils.ToAnySlice(value)
			result := make([]any, len(items))
			for i := range items {
				result[i] = strconv.Itoa(i)
			}
			return result
		}
		return models.Empty
	})
}

// Values lists the values of an object ordered by key, or a copy of an array.
func Values() models.StepFunc {
	return models.Pure(func(value any) any {
		switch models.KindOf(value) {
		case models.KindObject:
			obj, ok := utils.ToObject(value)
			if !ok {
				return models.Empty
			}
			keys := sortedKeys(obj)
			result := make([]any, len(keys))
			for i, key := range keys {
				result[i] = obj[key]
			}
			return result
		case models.KindArray:
			items, _ := utils.ToAnySlice(value)
			result := make([]any, len(items))
			copy(result, items)
			return result
		}
		return models.Empty
	})
}

func NewObjectKeysStep(_ string, _ any) (models.StepFunc, error) {
	return Keys(), nil
}

func NewObjectValuesStep(_ string, _ any) (models.StepFunc, error) {
	return Values(), nil
}

func sortedKeys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
