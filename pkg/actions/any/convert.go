package any

import (
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

// ToNumber coerces any value to a float64. It never fails; unreadable
// values become NaN.
func ToNumber() models.StepFunc {
	return models.Pure(func(value any) any {
		return utils.ToNumber(value)
	})
}

// ToString renders any value as a string, null as "null" and Empty as
// "undefined".
func ToString() models.StepFunc {
	return models.Pure(func(value any) any {
		return utils.ToString(value)
	})
}

// ToBoolean reports the truthiness of any value.
func ToBoolean() models.StepFunc {
	return models.Pure(func(value any) any {
		return utils.ToBoolean(value)
	})
}

func NewToNumberStep(_ string, _ any) (models.StepFunc, error) {
	return ToNumber(), nil
}

func NewToStringStep(_ string, _ any) (models.StepFunc, error) {
	return ToString(), nil
}

func NewToBooleanStep(_ string, _ any) (models.StepFunc, error) {
	return ToBoolean(), nil
}
