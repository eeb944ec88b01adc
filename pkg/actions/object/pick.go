package object

import (
	"github.com/Gobusters/ectolinq"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

type ObjectKeysArguments struct {
	Keys []string `json:"keys" validate:"required,min=1"`
}

// Pick returns a new object holding only the listed keys that are present.
func Pick(keys ...string) models.StepFunc {
	return project(func(key string) bool {
		return ectolinq.Contains(keys, key)
	})
}

// Omit returns a new object without the listed keys.
func Omit(keys ...string) models.StepFunc {
	return project(func(key string) bool {
		return !ectolinq.Contains(keys, key)
	})
}

func NewObjectPickStep(key string, args any) (models.StepFunc, error) {
	parsedArgs, err := utils.ValidateArguments[ObjectKeysArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	return Pick(parsedArgs.Keys...), nil
}

func NewObjectOmitStep(key string, args any) (models.StepFunc, error) {
	parsedArgs, err := utils.ValidateArguments[ObjectKeysArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	return Omit(parsedArgs.Keys...), nil
}

func project(keep func(key string) bool) models.StepFunc {
	return models.Pure(func(value any) any {
		if !models.Is(value, models.KindObject) {
			return models.Empty
		}
		obj, ok := utils.ToObject(value)
		if !ok {
			return models.Empty
		}

		result := make(map[string]any, len(obj))
		for _, key := range ectolinq.Filter(sortedKeys(obj), keep) {
			result[key] = obj[key]
		}
		return result
	})
}
