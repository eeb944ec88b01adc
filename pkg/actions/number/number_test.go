package number

import (
	"context"
	"math"
	"testing"

	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, step models.StepFunc, value, raw any) any {
	t.Helper()
	result, err := step(context.Background(), value, raw)
	require.NoError(t, err)
	return result
}

func TestArithmetic(t *testing.T) {
	raw := map[string]any{"factor": 3, "offset": "2", "missing": nil}

	tests := []struct {
		name     string
		step     models.StepFunc
		input    any
		expected float64
	}{
		{name: "increment", step: Increment(2), input: 3, expected: 5},
		{name: "increment numeric string", step: Increment(1), input: "41", expected: 42},
		{name: "increment null", step: Increment(2), input: nil, expected: 2},
		{name: "decrement", step: Decrement(2), input: 3.5, expected: 1.5},
		{name: "multiply", step: Multiply(4), input: []any{2}, expected: 8},
		{name: "divide", step: Divide(4), input: 2, expected: 0.5},
		{name: "divide by zero", step: Divide(0), input: 1, expected: math.Inf(1)},
		{name: "mod", step: Mod(3), input: -7, expected: -1},
		{name: "increment ref", step: IncrementRef("offset"), input: 1, expected: 3},
		{name: "multiply ref", step: MultiplyRef("factor"), input: 2, expected: 6},
		{name: "decrement null ref", step: DecrementRef("missing"), input: 2, expected: 2},
		{name: "mod ref", step: ModRef("factor"), input: 10, expected: 1},
		{name: "divide ref", step: DivideRef("factor"), input: 9, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, run(t, tt.step, tt.input, raw))
		})
	}

	nanTests := map[string]models.StepFunc{
		"word":        Increment(1),
		"missing ref": IncrementRef("nope"),
		"object":      Multiply(2),
	}
	inputs := map[string]any{"word": "string", "missing ref": 1, "object": map[string]any{}}

	for name, step := range nanTests {
		t.Run(name+" is NaN", func(t *testing.T) {
			result := run(t, step, inputs[name], raw)
			assert.True(t, math.IsNaN(result.(float64)))
		})
	}

	t.Run("should never return empty", func(t *testing.T) {
		result := run(t, Increment(1), models.Empty, nil)
		assert.True(t, math.IsNaN(result.(float64)))
	})
}

func TestArithmeticArguments(t *testing.T) {
	t.Run("should build a literal step", func(t *testing.T) {
		step, err := NewNumberIncrementStep("number_increment", map[string]any{"by": 2})
		require.NoError(t, err)
		assert.Equal(t, 3.0, run(t, step, 1, nil))
	})

	t.Run("should build a reference step", func(t *testing.T) {
		step, err := NewNumberMultiplyStep("number_multiply", map[string]any{"ref": "a.b"})
		require.NoError(t, err)
		assert.Equal(t, 10.0, run(t, step, 5, map[string]any{"a": map[string]any{"b": 2}}))
	})

	t.Run("should require an operand", func(t *testing.T) {
		_, err := NewNumberDivideStep("number_divide", nil)
		assert.Error(t, err)
		assert.Equal(t, "action 'number_divide': either by or ref is required", err.Error())
	})

	t.Run("should reject both operands", func(t *testing.T) {
		_, err := NewNumberModStep("number_mod", map[string]any{"by": 1, "ref": "a"})
		assert.Error(t, err)
	})
}

func TestRounding(t *testing.T) {
	tests := []struct {
		name     string
		step     models.StepFunc
		input    any
		expected float64
	}{
		{name: "round half up", step: Round(), input: 2.5, expected: 3},
		{name: "round negative half", step: Round(), input: -2.5, expected: -2},
		{name: "round down", step: Round(), input: 2.4, expected: 2},
		{name: "round precision", step: RoundTo(2), input: 12.346, expected: 12.35},
		{name: "ceil", step: Ceil(), input: 1.1, expected: 2},
		{name: "floor", step: Floor(), input: "1.9", expected: 1},
		{name: "abs", step: Abs(), input: -4, expected: 4},
		{name: "negate", step: Negate(), input: 4, expected: -4},
		{name: "negate bool", step: Negate(), input: true, expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, run(t, tt.step, tt.input, nil))
		})
	}

	t.Run("should keep NaN", func(t *testing.T) {
		assert.True(t, math.IsNaN(run(t, Round(), "x", nil).(float64)))
	})

	t.Run("should reject negative precision", func(t *testing.T) {
		_, err := NewNumberRoundStep("number_round", map[string]any{"precision": -1})
		assert.Error(t, err)
	})
}

func TestBounds(t *testing.T) {
	raw := map[string]any{"low": 1, "high": "10"}

	assert.Equal(t, 2.0, run(t, Min(5, 2), 3, nil))
	assert.Equal(t, 5.0, run(t, Max(5, 2), 3, nil))
	assert.Equal(t, 3.0, run(t, Min(), 3, nil))
	assert.Equal(t, 1.0, run(t, MinRef("low", "high"), 3, raw))
	assert.Equal(t, 10.0, run(t, MaxRef("low", "high"), 3, raw))
	assert.True(t, math.IsNaN(run(t, MaxRef("nope"), 3, raw).(float64)))

	step, err := NewNumberMaxStep("number_max", map[string]any{"values": []any{7, 8}})
	require.NoError(t, err)
	assert.Equal(t, 8.0, run(t, step, 1, nil))
}
