package registry

import (
	"sort"
	"sync"

	"github.com/Gobusters/ectolinq"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

// StepFactory builds a step from loosely typed arguments.
type StepFactory func(key string, args any) (models.StepFunc, error)

type ActionDefinition struct {
	Key         string      `json:"key" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description" validate:"required"`
	Factory     StepFactory `json:"-"`
}

var (
	mu      sync.RWMutex
	actions = map[string]ActionDefinition{}
)

// Register adds or replaces an action.
func Register(definition ActionDefinition) {
	mu.Lock()
	defer mu.Unlock()
	actions[definition.Key] = definition
}

func GetAction(key string, args any) (models.StepFunc, error) {
	mu.RLock()
	definition, ok := actions[key]
	mu.RUnlock()

	if !ok || definition.Factory == nil {
		return nil, errors.NewPipelineError("action not found").AddAction(key)
	}

	step, err := definition.Factory(key, args)
	if err != nil {
		if arguments := utils.StringifyArgument(args); arguments != "" {
			return nil, errors.NewPipelineErrorf("%w (arguments: %s)", err, arguments).AddAction(key)
		}
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	return step, nil
}

func Has(key string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := actions[key]
	return ok
}

// Keys lists the registered action keys in sorted order.
func Keys() []string {
	return ectolinq.Map(Definitions(), func(definition ActionDefinition) string {
		return definition.Key
	})
}

// Definitions lists the registered actions sorted by key.
func Definitions() []ActionDefinition {
	mu.RLock()
	result := ectolinq.Values(actions)
	mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})
	return result
}
