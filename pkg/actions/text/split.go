package text

import (
	"regexp"
	"strings"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

type TextSplitArguments struct {
	Separator string `json:"separator"`
	Pattern   string `json:"pattern"`
}

// Split breaks a string on sep. An empty sep splits into characters.
func Split(sep string) models.StepFunc {
	return models.Pure(func(value any) any {
		text, ok := value.(string)
		if !ok {
			return models.Empty
		}
		return toAnySlice(strings.Split(text, sep))
	})
}

// SplitRegex breaks a string on every match of re.
func SplitRegex(re *regexp.Regexp) models.StepFunc {
	return models.Pure(func(value any) any {
		text, ok := value.(string)
		if !ok {
			return models.Empty
		}
		return toAnySlice(re.Split(text, -1))
	})
}

// NewTextSplitStep splits on pattern when set, otherwise on separator.
func NewTextSplitStep(key string, args any) (models.StepFunc, error) {
	parsedArgs, err := utils.ValidateArguments[TextSplitArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}

	if parsedArgs.Pattern == "" {
		return Split(parsedArgs.Separator), nil
	}

	re, err := regexp.Compile(parsedArgs.Pattern)
	if err != nil {
		return nil, errors.NewPipelineErrorf("invalid pattern %q: %w", parsedArgs.Pattern, err).AddAction(key)
	}
	return SplitRegex(re), nil
}

func toAnySlice(parts []string) []any {
	result := make([]any, len(parts))
	for i, part := range parts {
		result[i] = part
	}
	return result
}
