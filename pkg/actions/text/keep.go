package text

import (
	"regexp"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

type TextKeepArguments struct {
	Pattern string `json:"pattern" validate:"required"`
	Group   *int   `json:"group" validate:"omitempty,min=0"`
	Name    string `json:"name"`
}

// Keep returns the capture group at index group of the first match of re.
// Groups are counted from 0, so group 0 is the first parenthesised group.
// No match or a group that did not participate gives Empty.
func Keep(re *regexp.Regexp, group int) models.StepFunc {
	return models.Pure(func(value any) any {
		text, ok := value.(string)
		if !ok {
			return models.Empty
		}
		return submatch(re, text, group+1)
	})
}

// KeepNamed returns the named capture group of the first match of re.
func KeepNamed(re *regexp.Regexp, name string) models.StepFunc {
	index := re.SubexpIndex(name)
	return models.Pure(func(value any) any {
		text, ok := value.(string)
		if !ok || index < 0 {
			return models.Empty
		}
		return submatch(re, text, index)
	})
}

func NewTextKeepStep(key string, args any) (models.StepFunc, error) {
	parsedArgs, err := utils.ValidateArguments[TextKeepArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}

	if parsedArgs.Group == nil && parsedArgs.Name == "" {
		return nil, errors.NewPipelineError("either group or name is required").AddAction(key)
	}

	re, err := regexp.Compile(parsedArgs.Pattern)
	if err != nil {
		return nil, errors.NewPipelineErrorf("invalid pattern %q: %w", parsedArgs.Pattern, err).AddAction(key)
	}

	if parsedArgs.Group != nil {
		return Keep(re, *parsedArgs.Group), nil
	}
	return KeepNamed(re, parsedArgs.Name), nil
}

func submatch(re *regexp.Regexp, text string, index int) any {
	match := re.FindStringSubmatchIndex(text)
	if match == nil || 2*index+1 >= len(match) || match[2*index] < 0 {
		return models.Empty
	}
	return text[match[2*index]:match[2*index+1]]
}
