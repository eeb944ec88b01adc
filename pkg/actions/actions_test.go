package actions

import (
	"context"
	"testing"

	"github.com/Ramsey-B/reed/pkg/actions/registry"
	"github.com/Ramsey-B/reed/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionDefinitions(t *testing.T) {
	Register()
	Register()

	for key, definition := range ActionDefinitions {
		t.Run(key, func(t *testing.T) {
			assert.Equal(t, key, definition.Key)
			assert.NotNil(t, definition.Factory)
			_, err := utils.Validate(definition)
			assert.NoError(t, err)
			assert.True(t, registry.Has(key))
		})
	}

	assert.Len(t, registry.Keys(), len(ActionDefinitions))
}

func TestRegisteredActions(t *testing.T) {
	Register()

	tests := []struct {
		key      string
		args     any
		input    any
		expected any
	}{
		{key: TextTrimAction, input: "  a ", expected: "a"},
		{key: TextToUpperAction, input: "a", expected: "A"},
		{key: NumberIncrementAction, args: map[string]any{"by": 1}, input: 1, expected: 2.0},
		{key: ArrayJoinAction, args: map[string]any{"separator": "|"}, input: []any{"a", "b"}, expected: "a|b"},
		{key: ObjectKeysAction, input: map[string]any{"b": 1, "a": 2}, expected: []any{"a", "b"}},
		{key: AnyDefaultAction, args: map[string]any{"default": "x"}, input: nil, expected: "x"},
		{key: DateFormatAction, args: map[string]any{"format": "yyyy", "timezone": "UTC"}, input: "2020-06-01", expected: "2020"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			step, err := registry.GetAction(tt.key, tt.args)
			require.NoError(t, err)

			result, err := step(context.Background(), tt.input, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
