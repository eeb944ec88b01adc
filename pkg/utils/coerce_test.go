package utils

import (
	"math"
	"testing"
	"time"

	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {
	type testCase struct {
		name     string
		input    any
		expected float64
	}

	testCases := []testCase{
		{name: "nil", input: nil, expected: 0},
		{name: "float", input: 1.5, expected: 1.5},
		{name: "int", input: 3, expected: 3},
		{name: "true", input: true, expected: 1},
		{name: "false", input: false, expected: 0},
		{name: "empty string", input: "", expected: 0},
		{name: "blank string", input: "   ", expected: 0},
		{name: "padded string", input: " 12 ", expected: 12},
		{name: "decimal string", input: "-1.25e2", expected: -125},
		{name: "leading dot", input: ".5", expected: 0.5},
		{name: "hex string", input: "0x1f", expected: 31},
		{name: "binary string", input: "0b101", expected: 5},
		{name: "infinity string", input: "Infinity", expected: math.Inf(1)},
		{name: "empty array", input: []any{}, expected: 0},
		{name: "single element array", input: []any{5}, expected: 5},
		{name: "single string array", input: []any{"7"}, expected: 7},
		{name: "single null array", input: []any{nil}, expected: 0},
		{name: "typed slice", input: []int{4}, expected: 4},
		{name: "date", input: time.UnixMilli(1500), expected: 1500},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, ToNumber(testCase.input))
		})
	}

	nanCases := map[string]any{
		"empty":               models.Empty,
		"word":                "string",
		"lowercase infinity":  "inf",
		"nan string":          "NaN",
		"underscores":         "1_000",
		"multi element array": []any{1, 2},
		"object":              map[string]any{"a": 1},
		"bad hex":             "0xzz",
		"struct":              struct{}{},
	}

	for name, input := range nanCases {
		t.Run(name, func(t *testing.T) {
			assert.True(t, math.IsNaN(ToNumber(input)))
		})
	}
}

func TestToString(t *testing.T) {
	type testCase struct {
		name     string
		input    any
		expected string
	}

	testCases := []testCase{
		{name: "nil", input: nil, expected: "null"},
		{name: "empty", input: models.Empty, expected: "undefined"},
		{name: "string", input: "a", expected: "a"},
		{name: "bool", input: true, expected: "true"},
		{name: "integer float", input: 3.0, expected: "3"},
		{name: "fraction", input: 1.5, expected: "1.5"},
		{name: "int", input: 42, expected: "42"},
		{name: "nan", input: math.NaN(), expected: "NaN"},
		{name: "negative infinity", input: math.Inf(-1), expected: "-Infinity"},
		{name: "large", input: 1e21, expected: "1e+21"},
		{name: "small", input: 1.5e-7, expected: "1.5e-7"},
		{name: "array", input: []any{1, nil, "a", models.Empty}, expected: "1,,a,"},
		{name: "nested array", input: []any{[]any{1, 2}, 3}, expected: "1,2,3"},
		{name: "object", input: map[string]any{}, expected: "[object Object]"},
		{name: "typed map", input: map[string]int{}, expected: "[object Object]"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, ToString(testCase.input))
		})
	}
}

func TestToBoolean(t *testing.T) {
	type testCase struct {
		name     string
		input    any
		expected bool
	}

	testCases := []testCase{
		{name: "nil", input: nil, expected: false},
		{name: "empty", input: models.Empty, expected: false},
		{name: "zero", input: 0, expected: false},
		{name: "nan", input: math.NaN(), expected: false},
		{name: "empty string", input: "", expected: false},
		{name: "false", input: false, expected: false},
		{name: "nil pointer", input: (*int)(nil), expected: false},
		{name: "number", input: -1.5, expected: true},
		{name: "string", input: "0", expected: true},
		{name: "empty array", input: []any{}, expected: true},
		{name: "empty object", input: map[string]any{}, expected: true},
		{name: "date", input: time.Now(), expected: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, ToBoolean(testCase.input))
		})
	}
}
