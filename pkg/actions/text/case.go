package text

import (
	"strings"

	"github.com/Ramsey-B/reed/pkg/models"
)

// ToUpper upper-cases strings. Anything else becomes Empty.
func ToUpper() models.StepFunc {
	return models.Pure(func(value any) any {
		text, ok := value.(string)
		if !ok {
			return models.Empty
		}
		return strings.ToUpper(text)
	})
}

// ToLower lower-cases strings. Anything else becomes Empty.
func ToLower() models.StepFunc {
	return models.Pure(func(value any) any {
		text, ok := value.(string)
		if !ok {
			return models.Empty
		}
		return strings.ToLower(text)
	})
}

func NewTextToUpperStep(_ string, _ any) (models.StepFunc, error) {
	return ToUpper(), nil
}

func NewTextToLowerStep(_ string, _ any) (models.StepFunc, error) {
	return ToLower(), nil
}
