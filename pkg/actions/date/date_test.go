package date

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, step models.StepFunc, value any) any {
	t.Helper()
	result, err := step(context.Background(), value, nil)
	require.NoError(t, err)
	return result
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected time.Time
	}{
		{name: "rfc3339", input: "2021-03-04T05:06:07Z", expected: time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)},
		{name: "rfc3339 fraction", input: "2021-03-04T05:06:07.250Z", expected: time.Date(2021, 3, 4, 5, 6, 7, 250000000, time.UTC)},
		{name: "local datetime", input: "2021-03-04T05:06:07", expected: time.Date(2021, 3, 4, 5, 6, 7, 0, time.Local)},
		{name: "date only is utc", input: "2021-03-04", expected: time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC)},
		{name: "month name", input: "March 4, 2021", expected: time.Date(2021, 3, 4, 0, 0, 0, 0, time.Local)},
		{name: "slashes", input: "03/04/2021", expected: time.Date(2021, 3, 4, 0, 0, 0, 0, time.Local)},
		{name: "epoch millis", input: 1500, expected: time.UnixMilli(1500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := Parse(tt.input)
			require.True(t, ok)
			assert.True(t, tt.expected.Equal(result), "expected %v, got %v", tt.expected, result)
		})
	}

	invalid := map[string]any{
		"word":      "not a date",
		"empty":     "",
		"nan":       math.NaN(),
		"too large": 9e15,
		"bool":      true,
		"nil":       nil,
		"zero time": time.Time{},
	}

	for name, input := range invalid {
		t.Run(name, func(t *testing.T) {
			_, ok := Parse(input)
			assert.False(t, ok)
		})
	}
}

func TestToDate(t *testing.T) {
	result := run(t, ToDate(), "2021-03-04T05:06:07Z")
	assert.IsType(t, time.Time{}, result)
	assert.Equal(t, models.Empty, run(t, ToDate(), "garbage"))

	step, err := NewDateToDateStep("date_to_date", map[string]any{"timezone": "UTC"})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, run(t, step, 0).(time.Time).Location())

	_, err = NewDateToDateStep("date_to_date", map[string]any{"timezone": "Mars/Olympus"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown timezone")
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		tokens   string
		expected string
	}{
		{name: "date", tokens: "yyyy-MM-dd", expected: "2021-03-04"},
		{name: "short", tokens: "yy M d", expected: "21 3 4"},
		{name: "time", tokens: "HH:mm:ss.SSS", expected: "17:06:07.089"},
		{name: "twelve hour", tokens: "h:mm a", expected: "5:06 PM"},
		{name: "names", tokens: "EEE EEEE MMM MMMM", expected: "Thu Thursday Mar March"},
		{name: "literal", tokens: "dd 'of' MMMM", expected: "04 of March"},
		{name: "offset", tokens: "ZZ Z ZZZ", expected: "+00:00 +0 +0000"},
		{name: "weekday number", tokens: "E q o", expected: "4 1 63"},
		{name: "alias", tokens: "datetime", expected: "2021-03-04 17:06:07"},
		{name: "unknown letters", tokens: "yyyy!T", expected: "2021!T"},
	}

	input := "2021-03-04T17:06:07.089Z"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, run(t, FormatIn(tt.tokens, time.UTC), input))
		})
	}

	t.Run("should render local datetimes in local time", func(t *testing.T) {
		assert.Equal(t, "2021-03-04 05:06", run(t, Format("yyyy-MM-dd HH:mm"), "2021-03-04T05:06:00"))
	})

	t.Run("should render in the requested zone", func(t *testing.T) {
		step, err := NewDateFormatStep("date_format", map[string]any{"format": "HH:mm ZZ", "timezone": "Asia/Kolkata"})
		require.NoError(t, err)
		assert.Equal(t, "22:36 +05:30", run(t, step, input))
	})

	t.Run("should return empty for unreadable input", func(t *testing.T) {
		assert.Equal(t, models.Empty, run(t, Format("yyyy"), "nope"))
		assert.Equal(t, models.Empty, run(t, Format("yyyy"), map[string]any{}))
	})

	t.Run("should require a format", func(t *testing.T) {
		_, err := NewDateFormatStep("date_format", nil)
		assert.Error(t, err)
	})
}
