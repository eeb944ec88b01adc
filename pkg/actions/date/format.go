package date

import (
	"time"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

type DateFormatArguments struct {
	Format   string `json:"format" validate:"required"`
	Timezone string `json:"timezone" validate:"omitempty"` // default: local time
}

// Common format aliases
var formatAliases = map[string]string{
	"iso8601":  "yyyy-MM-dd'T'HH:mm:ss.SSSZZ",
	"rfc3339":  "yyyy-MM-dd'T'HH:mm:ssZZ",
	"rfc1123":  "EEE, dd MMM yyyy HH:mm:ss ZZZZ",
	"date":     "yyyy-MM-dd",
	"datetime": "yyyy-MM-dd HH:mm:ss",
	"time":     "HH:mm:ss",
}

func resolveFormat(format string) string {
	if alias, ok := formatAliases[format]; ok {
		return alias
	}
	return format
}

// Format renders a date, an epoch in milliseconds, or a date string with
// Luxon-style tokens in local time. Unreadable input becomes Empty.
func Format(tokens string) models.StepFunc {
	return FormatIn(tokens, time.Local)
}

// FormatIn is Format rendered in loc.
func FormatIn(tokens string, loc *time.Location) models.StepFunc {
	parts := tokenize(resolveFormat(tokens))
	if loc == nil {
		loc = time.Local
	}

	return models.Pure(func(value any) any {
		t, ok := Parse(value)
		if !ok {
			return models.Empty
		}
		return render(t.In(loc), parts)
	})
}

func NewDateFormatStep(key string, args any) (models.StepFunc, error) {
	parsedArgs, err := utils.ValidateArguments[DateFormatArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}

	loc, err := loadLocation(parsedArgs.Timezone)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	return FormatIn(parsedArgs.Format, loc), nil
}
