package text

import (
	"regexp"
	"strings"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

type TextReplaceArguments struct {
	Target      string `json:"target"`
	Replacement string `json:"replacement"`
	All         bool   `json:"all"`
}

type TextRegexReplaceArguments struct {
	Pattern     string `json:"pattern" validate:"required"`
	Replacement string `json:"replacement"`
}

// Replace substitutes the first occurrence of target.
func Replace(target, replacement string) models.StepFunc {
	return models.Pure(func(value any) any {
		text, ok := value.(string)
		if !ok {
			return models.Empty
		}
		return strings.Replace(text, target, replacement, 1)
	})
}

// ReplaceAll substitutes every occurrence of target.
func ReplaceAll(target, replacement string) models.StepFunc {
	return models.Pure(func(value any) any {
		text, ok := value.(string)
		if !ok {
			return models.Empty
		}
		return strings.ReplaceAll(text, target, replacement)
	})
}

// ReplaceRegex substitutes every match of re. replacement may reference
// groups with $1 or ${name}.
func ReplaceRegex(re *regexp.Regexp, replacement string) models.StepFunc {
	return models.Pure(func(value any) any {
		text, ok := value.(string)
		if !ok {
			return models.Empty
		}
		return re.ReplaceAllString(text, replacement)
	})
}

func NewTextReplaceStep(key string, args any) (models.StepFunc, error) {
	parsedArgs, err := utils.ValidateArguments[TextReplaceArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}

	if parsedArgs.All {
		return ReplaceAll(parsedArgs.Target, parsedArgs.Replacement), nil
	}
	return Replace(parsedArgs.Target, parsedArgs.Replacement), nil
}

func NewTextRegexReplaceStep(key string, args any) (models.StepFunc, error) {
	parsedArgs, err := utils.ValidateArguments[TextRegexReplaceArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}

	re, err := regexp.Compile(parsedArgs.Pattern)
	if err != nil {
		return nil, errors.NewPipelineErrorf("invalid pattern %q: %w", parsedArgs.Pattern, err).AddAction(key)
	}

	return ReplaceRegex(re, parsedArgs.Replacement), nil
}
