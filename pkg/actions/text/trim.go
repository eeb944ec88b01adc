package text

import (
	"context"
	"strings"
	"unicode"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

const (
	SideLeft  = "left"
	SideRight = "right"
	SideBoth  = "both"
)

type TextTrimArguments struct {
	Chars string `json:"chars" validate:"omitempty"` // default: whitespace
	Side  string `json:"side" validate:"omitempty,oneof=left right both"`
}

// isSpace matches the characters String.prototype.trim removes.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\ufeff'
}

// Trim removes leading and trailing whitespace from strings.
func Trim() models.StepFunc {
	return trimStep(TextTrimArguments{Side: SideBoth})
}

// TrimLeft removes leading whitespace from strings.
func TrimLeft() models.StepFunc {
	return trimStep(TextTrimArguments{Side: SideLeft})
}

// TrimRight removes trailing whitespace from strings.
func TrimRight() models.StepFunc {
	return trimStep(TextTrimArguments{Side: SideRight})
}

func NewTextTrimStep(key string, args any) (models.StepFunc, error) {
	parsedArgs, err := utils.ValidateArguments[TextTrimArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	return trimStep(parsedArgs), nil
}

func trimStep(args TextTrimArguments) models.StepFunc {
	return func(_ context.Context, value, _ any) (any, error) {
		text, ok := value.(string)
		if !ok {
			return models.Empty, nil
		}

		if args.Chars == "" {
			switch args.Side {
			case SideLeft:
				return strings.TrimLeftFunc(text, isSpace), nil
			case SideRight:
				return strings.TrimRightFunc(text, isSpace), nil
			default:
				return strings.TrimFunc(text, isSpace), nil
			}
		}

		switch args.Side {
		case SideLeft:
			return strings.TrimLeft(text, args.Chars), nil
		case SideRight:
			return strings.TrimRight(text, args.Chars), nil
		default:
			return strings.Trim(text, args.Chars), nil
		}
	}
}
