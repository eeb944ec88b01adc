package utils

import (
	"testing"
	"time"

	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestAnyToType(t *testing.T) {
	type testCase struct {
		name     string
		input    any
		expected any
		err      bool
	}

	floatTestCases := []testCase{
		{name: "float", input: 1.0, expected: 1.0, err: false},
		{name: "float int", input: 1, expected: 1.0, err: false},
		{name: "float nil", input: nil, expected: 0.0, err: false},
		{name: "float empty", input: models.Empty, expected: 0.0, err: false},
		{name: "float string", input: "1.0", expected: 1.0, err: true},
		{name: "float bool", input: true, expected: 1.0, err: true},
		{name: "float time", input: time.Now(), expected: 1.0, err: true},
	}

	for _, testCase := range floatTestCases {
		t.Run(testCase.name, func(t *testing.T) {
			result, err := AnyToType[float64](testCase.input)
			if testCase.err {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testCase.expected, result)
			}
		})
	}

	stringTestCases := []testCase{
		{name: "string", input: "test", expected: "test", err: false},
		{name: "string int", input: 65, expected: "A", err: true},
		{name: "string slice", input: []any{1, 2, 3}, expected: "1,2,3", err: true},
	}

	for _, testCase := range stringTestCases {
		t.Run(testCase.name, func(t *testing.T) {
			result, err := AnyToType[string](testCase.input)
			if testCase.err {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testCase.expected, result)
			}
		})
	}

	sliceTestCases := []testCase{
		{name: "slice", input: []any{1, 2, 3}, expected: []any{1, 2, 3}, err: false},
		{name: "slice typed", input: []string{"a", "b"}, expected: []any{"a", "b"}, err: false},
		{name: "slice string", input: "1,2,3", expected: nil, err: true},
	}

	for _, testCase := range sliceTestCases {
		t.Run(testCase.name, func(t *testing.T) {
			result, err := AnyToType[[]any](testCase.input)
			if testCase.err {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testCase.expected, result)
			}
		})
	}
}

func TestToAnySlice(t *testing.T) {
	t.Run("should return the same backing array for []any", func(t *testing.T) {
		input := []any{1, 2}
		result, ok := ToAnySlice(input)
		assert.True(t, ok)

		result[0] = "changed"
		assert.Equal(t, "changed", input[0])
	})

	t.Run("should copy typed slices and arrays", func(t *testing.T) {
		result, ok := ToAnySlice([2]int{1, 2})
		assert.True(t, ok)
		assert.Equal(t, []any{1, 2}, result)
	})

	t.Run("should reject non slices", func(t *testing.T) {
		_, ok := ToAnySlice("abc")
		assert.False(t, ok)
	})
}

func TestToObject(t *testing.T) {
	t.Run("should return map[string]any as is", func(t *testing.T) {
		input := map[string]any{"a": 1}
		result, ok := ToObject(input)
		assert.True(t, ok)

		result["b"] = 2
		assert.Equal(t, 2, input["b"])
	})

	t.Run("should copy typed maps", func(t *testing.T) {
		result, ok := ToObject(map[string]int{"a": 1})
		assert.True(t, ok)
		assert.Equal(t, map[string]any{"a": 1}, result)
	})

	t.Run("should reject non string keys", func(t *testing.T) {
		_, ok := ToObject(map[int]any{1: 1})
		assert.False(t, ok)
	})
}
