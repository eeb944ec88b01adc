package models

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	type testCase struct {
		name     string
		input    any
		expected Kind
	}

	testCases := []testCase{
		{name: "empty", input: Empty, expected: KindEmpty},
		{name: "nil", input: nil, expected: KindNull},
		{name: "bool", input: true, expected: KindBool},
		{name: "int", input: 1, expected: KindNumber},
		{name: "float", input: 1.5, expected: KindNumber},
		{name: "string", input: "test", expected: KindString},
		{name: "array", input: []any{1, 2}, expected: KindArray},
		{name: "typed slice", input: []string{"a"}, expected: KindArray},
		{name: "object", input: map[string]any{"a": 1}, expected: KindObject},
		{name: "typed map", input: map[string]int{"a": 1}, expected: KindObject},
		{name: "int keyed map", input: map[int]any{1: 1}, expected: KindOther},
		{name: "date", input: time.Now(), expected: KindDate},
		{name: "nil pointer", input: (*int)(nil), expected: KindNull},
		{name: "struct", input: struct{}{}, expected: KindOther},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, KindOf(testCase.input))
		})
	}
}

func TestEmpty(t *testing.T) {
	t.Run("should distinguish empty from nil", func(t *testing.T) {
		assert.True(t, IsEmpty(Empty))
		assert.False(t, IsEmpty(nil))
		assert.False(t, IsEmpty(""))
		assert.False(t, IsEmpty(0))
	})

	t.Run("should match kinds", func(t *testing.T) {
		assert.True(t, Is("x", KindNumber, KindString))
		assert.False(t, Is(Empty, KindNull))
	})

	t.Run("should encode as null", func(t *testing.T) {
		data, err := json.Marshal(map[string]any{"a": Empty})
		assert.NoError(t, err)
		assert.JSONEq(t, `{"a":null}`, string(data))
	})
}

func TestAdapters(t *testing.T) {
	t.Run("pure ignores raw values", func(t *testing.T) {
		step := Pure(func(value any) any { return value })
		out, err := step(context.Background(), "a", "b")
		assert.NoError(t, err)
		assert.Equal(t, "a", out)
	})

	t.Run("with raw receives raw values", func(t *testing.T) {
		step := WithRaw(func(_, raw any) any { return raw })
		out, err := step.Compile()(context.Background(), "a", "b")
		assert.NoError(t, err)
		assert.Equal(t, "b", out)
	})

	t.Run("condition func is a predicate", func(t *testing.T) {
		var p Predicate = ConditionFunc(func(context.Context, any, any) (bool, error) { return true, nil })
		ok, err := p.Condition()(context.Background(), nil, nil)
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}
