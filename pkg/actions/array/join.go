package array

import (
	"strings"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

const defaultSeparator = ","

type ArrayJoinArguments struct {
	Separator *string `json:"separator"` // default: ","
}

// Join concatenates the elements of an array with sep. null and Empty
// elements render as empty strings.
func Join(sep string) models.StepFunc {
	return models.Pure(func(value any) any {
		items, ok := asArray(value)
		if !ok {
			return models.Empty
		}

		parts := make([]string, len(items))
		for i, item := range items {
			if item == nil || models.IsEmpty(item) {
				continue
			}
			parts[i] = utils.ToString(item)
		}
		return strings.Join(parts, sep)
	})
}

func NewArrayJoinStep(key string, args any) (models.StepFunc, error) {
	parsedArgs, err := utils.ValidateArguments[ArrayJoinArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}

	if parsedArgs.Separator == nil {
		return Join(defaultSeparator), nil
	}
	return Join(*parsedArgs.Separator), nil
}

// asArray accepts any slice or array kind. []any is returned without copying.
func asArray(value any) ([]any, bool) {
	if !models.Is(value, models.KindArray) {
		return nil, false
	}
	return utils.ToAnySlice(value)
}
