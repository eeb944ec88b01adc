package object

import (
	"context"
	"testing"

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

func TestKeysValues(t *testing.T) {
	obj := map[string]any{"b": 2, "a": 1, "c": nil}

	assert.Equal(t, []any{"a", "b", "c"}, run(t, Keys(), obj))
	assert.Equal(t, []any{1, 2, nil}, run(t, Values(), obj))
	assert.Equal(t, []any{"0", "1"}, run(t, Keys(), []any{"x", "y"}))
	assert.Equal(t, []any{"x", "y"}, run(t, Values(), []string{"x", "y"}))
	assert.Equal(t, []any{"k"}, run(t, Keys(), map[string]int{"k": 1}))
	assert.Equal(t, models.Empty, run(t, Keys(), "abc"))
	assert.Equal(t, models.Empty, run(t, Values(), nil))
}

func TestPickOmit(t *testing.T) {
	obj := map[string]any{"id": 1, "name": "x", "secret": "s"}

	assert.Equal(t, map[string]any{"id": 1, "name": "x"}, run(t, Pick("id", "name", "missing"), obj))
	assert.Equal(t, map[string]any{"id": 1, "name": "x"}, run(t, Omit("secret"), obj))
	assert.Len(t, obj, 3)
	assert.Equal(t, models.Empty, run(t, Pick("id"), []any{}))

	t.Run("should require keys", func(t *testing.T) {
		_, err := NewObjectPickStep("object_pick", map[string]any{})
		assert.Error(t, err)
	})

	t.Run("should build from arguments", func(t *testing.T) {
		step, err := NewObjectOmitStep("object_omit", map[string]any{"keys": []any{"id"}})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "x", "secret": "s"}, run(t, step, obj))
	})
}
