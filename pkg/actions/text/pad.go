package text

import (
	"strings"
	"unicode/utf8"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

type TextPadArguments struct {
	Length int    `json:"length" validate:"required,min=1"`
	Char   string `json:"char" validate:"omitempty"` // default: space
	Side   string `json:"side" validate:"omitempty,oneof=left right both"`
}

// Pad extends strings shorter than length with char on the given side.
func Pad(length int, char, side string) models.StepFunc {
	if char == "" {
		char = " "
	}
	if side == "" {
		side = SideRight
	}

	return models.Pure(func(value any) any {
		text, ok := value.(string)
		if !ok {
			return models.Empty
		}

		padLen := length - utf8.RuneCountInString(text)
		if padLen <= 0 {
			return text
		}

		switch side {
		case SideLeft:
			return strings.Repeat(char, padLen) + text
		case SideBoth:
			leftPad := padLen / 2
			return strings.Repeat(char, leftPad) + text + strings.Repeat(char, padLen-leftPad)
		default:
			return text + strings.Repeat(char, padLen)
		}
	})
}

func NewTextPadStep(key string, args any) (models.StepFunc, error) {
	parsedArgs, err := utils.ValidateArguments[TextPadArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	return Pad(parsedArgs.Length, parsedArgs.Char, parsedArgs.Side), nil
}
