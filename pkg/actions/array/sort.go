package array

import (
	"sort"
	"strings"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

type ArraySortArguments struct {
	Descending bool `json:"descending"`
}

// Sort orders an array in place. Without compare, elements are ordered by
// their string form. Empty elements always sort last. Typed slices are
// copied before sorting.
func Sort(compare ...func(a, b any) int) models.StepFunc {
	cmp := compareStrings
	if len(compare) > 0 && compare[0] != nil {
		cmp = compare[0]
	}

	return models.Pure(func(value any) any {
		items, ok := asArray(value)
		if !ok {
			return models.Empty
		}

		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i], items[j]
			switch {
			case models.IsEmpty(a):
				return false
			case models.IsEmpty(b):
				return true
			}
			return cmp(a, b) < 0
		})
		return items
	})
}

func NewArraySortStep(key string, args any) (models.StepFunc, error) {
	parsedArgs, err := utils.ValidateArguments[ArraySortArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}

	if parsedArgs.Descending {
		return Sort(func(a, b any) int { return compareStrings(b, a) }), nil
	}
	return Sort(), nil
}

func compareStrings(a, b any) int {
	return strings.Compare(utils.ToString(a), utils.ToString(b))
}
