package number

import (
	"math"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

type NumberRoundArguments struct {
	Precision int `json:"precision" validate:"min=0,max=15"`
}

// Round rounds to the nearest integer, halves toward positive infinity.
func Round() models.StepFunc {
	return RoundTo(0)
}

// RoundTo rounds to the given number of decimal places.
func RoundTo(precision int) models.StepFunc {
	scale := math.Pow(10, float64(precision))
	return models.Pure(func(value any) any {
		num := utils.ToNumber(value)
		if precision == 0 {
			return roundHalfUp(num)
		}
		return roundHalfUp(num*scale) / scale
	})
}

func Ceil() models.StepFunc {
	return unary(math.Ceil)
}

func Floor() models.StepFunc {
	return unary(math.Floor)
}

func Abs() models.StepFunc {
	return unary(math.Abs)
}

func Negate() models.StepFunc {
	return unary(func(n float64) float64 { return -n })
}

func NewNumberRoundStep(key string, args any) (models.StepFunc, error) {
	parsedArgs, err := utils.ValidateArguments[NumberRoundArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	return RoundTo(parsedArgs.Precision), nil
}

func NewNumberCeilStep(_ string, _ any) (models.StepFunc, error) {
	return Ceil(), nil
}

func NewNumberFloorStep(_ string, _ any) (models.StepFunc, error) {
	return Floor(), nil
}

func NewNumberAbsStep(_ string, _ any) (models.StepFunc, error) {
	return Abs(), nil
}

func NewNumberNegateStep(_ string, _ any) (models.StepFunc, error) {
	return Negate(), nil
}

func unary(fn func(float64) float64) models.StepFunc {
	return models.Pure(func(value any) any {
		return fn(utils.ToNumber(value))
	})
}

func roundHalfUp(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return n
	}
	floor := math.Floor(n)
	if n-floor >= 0.5 {
		return floor + 1
	}
	return floor
}
