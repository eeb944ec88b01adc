package array

import (
	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

type ArraySliceArguments struct {
	Start int  `json:"start"`
	End   *int `json:"end"`
}

// Slice takes the portion of a string or array between start and the
// optional end. Negative positions count back from the end. Strings are
// sliced by character.
func Slice(start int, end ...int) models.StepFunc {
	return models.Pure(func(value any) any {
		switch models.KindOf(value) {
		case models.KindString:
			runes := []rune(value.(string))
			from, to := bounds(len(runes), start, end)
			return string(runes[from:to])
		case models.KindArray:
			items, _ := utils.ToAnySlice(value)
			from, to := bounds(len(items), start, end)
			result := make([]any, to-from)
			copy(result, items[from:to])
			return result
		}
		return models.Empty
	})
}

func NewArraySliceStep(key string, args any) (models.StepFunc, error) {
	parsedArgs, err := utils.ValidateArguments[ArraySliceArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}

	if parsedArgs.End == nil {
		return Slice(parsedArgs.Start), nil
	}
	return Slice(parsedArgs.Start, *parsedArgs.End), nil
}

func bounds(length, start int, end []int) (int, int) {
	from := clamp(length, start)
	to := length
	if len(end) > 0 {
		to = clamp(length, end[0])
	}
	if to < from {
		to = from
	}
	return from, to
}

func clamp(length, position int) int {
	if position < 0 {
		position += length
		if position < 0 {
			return 0
		}
		return position
	}
	if position > length {
		return length
	}
	return position
}
