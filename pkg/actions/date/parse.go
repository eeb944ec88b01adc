package date

import (
	"math"
	"strings"
	"time"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

// maxEpochMillis is the largest distance from the epoch a date may have.
const maxEpochMillis = 8.64e15

type layout struct {
	format   string
	location *time.Location // nil means the layout carries its own zone
}

// Layouts tried in order when reading a date from a string. Date-only forms
// are UTC; date-time forms without a zone are local time.
var layouts = []layout{
	{format: time.RFC3339Nano},
	{format: "2006-01-02T15:04:05.999999999", location: time.Local},
	{format: "2006-01-02T15:04", location: time.Local},
	{format: "2006-01-02 15:04:05.999999999Z07:00"},
	{format: "2006-01-02 15:04:05.999999999", location: time.Local},
	{format: "2006-01-02", location: time.UTC},
	{format: "2006-01", location: time.UTC},
	{format: time.RFC1123},
	{format: time.RFC1123Z},
	{format: time.RFC850},
	{format: time.RFC822},
	{format: time.RFC822Z},
	{format: time.UnixDate},
	{format: time.ANSIC, location: time.Local},
	{format: "January 2, 2006", location: time.Local},
	{format: "Jan 2, 2006", location: time.Local},
	{format: "2 January 2006", location: time.Local},
	{format: "01/02/2006", location: time.Local},
	{format: "2006/01/02", location: time.Local},
}

type DateToDateArguments struct {
	Timezone string `json:"timezone" validate:"omitempty"`
}

// Parse reads a date from a time.Time, an epoch in milliseconds, or a string
// in one of the supported layouts.
func Parse(value any) (time.Time, bool) {
	switch models.KindOf(value) {
	case models.KindDate:
		t := value.(time.Time)
		return t, !t.IsZero()
	case models.KindNumber:
		ms := utils.ToNumber(value)
		if math.IsNaN(ms) || math.Abs(ms) > maxEpochMillis {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(ms)), true
	case models.KindString:
		return parseString(strings.TrimSpace(value.(string)))
	}
	return time.Time{}, false
}

func parseString(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, l := range layouts {
		var (
			t   time.Time
			err error
		)
		if l.location == nil {
			t, err = time.Parse(l.format, s)
		} else {
			t, err = time.ParseInLocation(l.format, s, l.location)
		}
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ToDate converts the value to a time.Time. Unreadable values become Empty.
func ToDate() models.StepFunc {
	return ToDateIn(nil)
}

// ToDateIn is ToDate with the result moved to loc. A nil loc keeps the
// parsed location.
func ToDateIn(loc *time.Location) models.StepFunc {
	return models.Pure(func(value any) any {
		t, ok := Parse(value)
		if !ok {
			return models.Empty
		}
		if loc != nil {
			t = t.In(loc)
		}
		return t
	})
}

func NewDateToDateStep(key string, args any) (models.StepFunc, error) {
	parsedArgs, err := utils.ValidateArguments[DateToDateArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}

	loc, err := loadLocation(parsedArgs.Timezone)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	return ToDateIn(loc), nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.NewPipelineErrorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}
