package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Ramsey-B/reed/pkg/models"
)

// DateStringLayout is used when a date is coerced to a string.
const DateStringLayout = "Mon Jan 02 2006 15:04:05 GMT-0700"

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ToNumber applies weak numeric coercion. It never fails: anything that does
// not look like a number becomes NaN.
//
//	nil -> 0, Empty -> NaN, true -> 1, "" -> 0, " 12 " -> 12, "0x1f" -> 31,
//	[] -> 0, [5] -> 5, [1, 2] -> NaN, objects -> NaN, dates -> epoch millis
func ToNumber(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		return stringToNumber(v)
	case time.Time:
		return float64(v.UnixMilli())
	case map[string]any:
		return math.NaN()
	}

	if models.IsEmpty(value) {
		return math.NaN()
	}

	if n, err := AnyToType[float64](value); err == nil {
		return n
	}

	if _, ok := ToAnySlice(value); ok {
		return stringToNumber(ToString(value))
	}

	return math.NaN()
}

func stringToNumber(s string) float64 {
	s = strings.TrimSpace(strings.Trim(s, "\ufeff"))
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}

	// out of range values come back as +/-Inf alongside the error
	n, err := strconv.ParseFloat(s, 64)
	if err != nil && !math.IsInf(n, 0) {
		return math.NaN()
	}

	return n
}

// ToString applies weak string coercion.
//
//	nil -> "null", Empty -> "undefined", 1.5 -> "1.5", [1, null, "a"] -> "1,,a",
//	objects -> "[object Object]"
func ToString(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return FormatNumber(v)
	case time.Time:
		return v.Format(DateStringLayout)
	case map[string]any:
		return "[object Object]"
	case fmt.Stringer:
		if models.IsEmpty(value) {
			return "undefined"
		}
		return v.String()
	}

	if n, err := AnyToType[float64](value); err == nil {
		return FormatNumber(n)
	}

	if items, ok := ToAnySlice(value); ok {
		parts := make([]string, len(items))
		for i, item := range items {
			if item == nil || models.IsEmpty(item) {
				continue
			}
			parts[i] = ToString(item)
		}
		return strings.Join(parts, ",")
	}

	if _, ok := ToObject(value); ok {
		return "[object Object]"
	}

	return fmt.Sprint(value)
}

// FormatNumber renders a float the way a script engine prints numbers:
// integers without a fraction, exponent notation outside [1e-6, 1e21).
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}

	abs := math.Abs(n)
	if abs >= 1e21 || abs < 1e-6 {
		formatted := strconv.FormatFloat(n, 'e', -1, 64)
		mantissa, exponent, _ := strings.Cut(formatted, "e")
		sign := exponent[:1]
		exponent = strings.TrimLeft(exponent[1:], "0")
		if exponent == "" {
			exponent = "0"
		}
		return mantissa + "e" + sign + exponent
	}

	return strconv.FormatFloat(n, 'f', -1, 64)
}

// ToBoolean applies weak boolean coercion: nil, Empty, false, 0, NaN and ""
// are false, everything else (including empty arrays and objects) is true.
func ToBoolean(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0 && !math.IsNaN(v)
	}

	if models.IsEmpty(value) {
		return false
	}

	if models.KindOf(value) == models.KindNull {
		return false
	}

	if n, err := AnyToType[float64](value); err == nil {
		return n != 0 && !math.IsNaN(n)
	}

	return true
}
