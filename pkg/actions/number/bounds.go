package number

import (
	"math"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

type NumberBoundsArguments struct {
	Values []float64 `json:"values"`
	Refs   []string  `json:"refs"`
}

// Min returns the smallest of the input and values. Any NaN makes the result NaN.
func Min(values ...float64) models.StepFunc {
	return bound(math.Min, values)
}

// Max returns the largest of the input and values. Any NaN makes the result NaN.
func Max(values ...float64) models.StepFunc {
	return bound(math.Max, values)
}

func MinRef(refs ...string) models.StepFunc {
	return boundRef(math.Min, refs)
}

func MaxRef(refs ...string) models.StepFunc {
	return boundRef(math.Max, refs)
}

func NewNumberMinStep(key string, args any) (models.StepFunc, error) {
	return newBoundsStep(key, args, Min, MinRef)
}

func NewNumberMaxStep(key string, args any) (models.StepFunc, error) {
	return newBoundsStep(key, args, Max, MaxRef)
}

func newBoundsStep(key string, args any, byValues func(...float64) models.StepFunc, byRefs func(...string) models.StepFunc) (models.StepFunc, error) {
	parsedArgs, err := utils.ValidateArguments[NumberBoundsArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}

	if len(parsedArgs.Values) > 0 && len(parsedArgs.Refs) > 0 {
		return nil, errors.NewPipelineError("only one of values or refs may be set").AddAction(key)
	}
	if len(parsedArgs.Refs) > 0 {
		return byRefs(parsedArgs.Refs...), nil
	}
	return byValues(parsedArgs.Values...), nil
}

func bound(pick func(a, b float64) float64, values []float64) models.StepFunc {
	return models.Pure(func(value any) any {
		return fold(pick, utils.ToNumber(value), values)
	})
}

func boundRef(pick func(a, b float64) float64, refs []string) models.StepFunc {
	return models.WithRaw(func(value, raw any) any {
		values := make([]float64, len(refs))
		for i, ref := range refs {
			values[i] = utils.ToNumber(utils.Ref(ref, raw))
		}
		return fold(pick, utils.ToNumber(value), values)
	})
}

func fold(pick func(a, b float64) float64, start float64, values []float64) float64 {
	result := start
	for _, v := range values {
		result = pick(result, v)
	}
	return result
}
