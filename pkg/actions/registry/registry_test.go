package registry

import (
	"context"
	"testing"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	Register(ActionDefinition{
		Key:         "test_constant",
		Name:        "Test Constant",
		Description: "Returns its argument",
		Factory: func(key string, args any) (models.StepFunc, error) {
			if args == nil {
				return nil, errors.NewPipelineError("value is required")
			}
			return models.Pure(func(any) any { return args }), nil
		},
	})

	t.Run("should build registered actions", func(t *testing.T) {
		step, err := GetAction("test_constant", "x")
		require.NoError(t, err)

		result, err := step(context.Background(), 1, nil)
		require.NoError(t, err)
		assert.Equal(t, "x", result)
	})

	t.Run("should annotate factory errors with the key", func(t *testing.T) {
		_, err := GetAction("test_constant", nil)
		assert.Error(t, err)
		assert.Equal(t, "action 'test_constant': value is required", err.Error())
	})

	t.Run("should include rejected arguments", func(t *testing.T) {
		Register(ActionDefinition{
			Key:         "test_reject",
			Name:        "Test Reject",
			Description: "Rejects every argument",
			Factory: func(key string, args any) (models.StepFunc, error) {
				return nil, errors.NewPipelineError("bad arguments")
			},
		})

		_, err := GetAction("test_reject", map[string]any{"by": "two"})
		assert.EqualError(t, err, "action 'test_reject': bad arguments (arguments: by=two)")
	})

	t.Run("should fail for unknown actions", func(t *testing.T) {
		_, err := GetAction("nope", nil)
		assert.Error(t, err)
		assert.Equal(t, "action 'nope': action not found", err.Error())
		assert.False(t, Has("nope"))
	})

	t.Run("should list actions sorted", func(t *testing.T) {
		Register(ActionDefinition{Key: "a_first", Name: "A", Description: "A", Factory: nil})
		keys := Keys()
		assert.Contains(t, keys, "test_constant")
		assert.Equal(t, "a_first", keys[0])
		assert.True(t, Has("a_first"))

		_, err := GetAction("a_first", nil)
		assert.Error(t, err)
	})
}
