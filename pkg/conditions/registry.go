package conditions

import (
	"sort"
	"sync"

	"github.com/Gobusters/ectolinq"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

// ConditionFactory builds a condition from loosely typed arguments.
type ConditionFactory func(key string, args any) (models.ConditionFunc, error)

type ConditionDefinition struct {
	Key         string           `json:"key" validate:"required"`
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Factory     ConditionFactory `json:"-"`
}

const (
	IsNilCondition     = "is_nil"
	IsEmptyCondition   = "is_empty"
	IsPresentCondition = "is_present"
	EqualsCondition    = "equals"
	RefEqualsCondition = "ref_equals"
	RefExistsCondition = "ref_exists"
	TagCondition       = "tag"
	RefTagCondition    = "ref_tag"
	ValidateCondition  = "validate"
)

type EqualsArguments struct {
	Value any `json:"value"`
}

type RefArguments struct {
	Ref   string `json:"ref" validate:"required"`
	Value any    `json:"value"`
	Tag   string `json:"tag"`
}

type TagArguments struct {
	Tag string `json:"tag" validate:"required"`
}

type ValidateArguments struct {
	Rules []Rule `json:"rules" validate:"required,min=1,dive"`
}

var (
	mu         sync.RWMutex
	conditions = map[string]ConditionDefinition{
		IsNilCondition: {
			Key:         IsNilCondition,
			Name:        "Is Nil",
			Description: "Holds for null values",
			Factory:     noArguments(IsNil),
		},
		IsEmptyCondition: {
			Key:         IsEmptyCondition,
			Name:        "Is Empty",
			Description: "Holds for values no step could produce",
			Factory:     noArguments(IsEmpty),
		},
		IsPresentCondition: {
			Key:         IsPresentCondition,
			Name:        "Is Present",
			Description: "Holds for anything but null and empty",
			Factory:     noArguments(IsPresent),
		},
		EqualsCondition: {
			Key:         EqualsCondition,
			Name:        "Equals",
			Description: "Compares the value with a constant",
			Factory:     newEquals,
		},
		RefEqualsCondition: {
			Key:         RefEqualsCondition,
			Name:        "Reference Equals",
			Description: "Compares a raw value with a constant",
			Factory:     newRefEquals,
		},
		RefExistsCondition: {
			Key:         RefExistsCondition,
			Name:        "Reference Exists",
			Description: "Holds when a path resolves in the raw values",
			Factory:     newRefExists,
		},
		TagCondition: {
			Key:         TagCondition,
			Name:        "Validation Tag",
			Description: "Checks the value against a validator tag",
			Factory:     newTag,
		},
		RefTagCondition: {
			Key:         RefTagCondition,
			Name:        "Reference Validation Tag",
			Description: "Checks a raw value against a validator tag",
			Factory:     newRefTag,
		},
		ValidateCondition: {
			Key:         ValidateCondition,
			Name:        "Validate",
			Description: "Checks paths of the value against validator tags",
			Factory:     newValidate,
		},
	}
)

// Register adds or replaces a condition.
func Register(definition ConditionDefinition) {
	mu.Lock()
	defer mu.Unlock()
	conditions[definition.Key] = definition
}

// GetCondition builds the condition registered under key. invert negates it.
func GetCondition(key string, args any, invert bool) (models.ConditionFunc, error) {
	mu.RLock()
	definition, ok := conditions[key]
	mu.RUnlock()

	if !ok || definition.Factory == nil {
		return nil, errors.NewPipelineError("condition not found").AddAction(key)
	}

	condition, err := definition.Factory(key, args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}

	if invert {
		return Not(condition), nil
	}
	return condition, nil
}

// Definitions lists the registered conditions sorted by key.
func Definitions() []ConditionDefinition {
	mu.RLock()
	result := ectolinq.Values(conditions)
	mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})
	return result
}

func noArguments(build func() models.ConditionFunc) ConditionFactory {
	return func(string, any) (models.ConditionFunc, error) {
		return build(), nil
	}
}

func newEquals(key string, args any) (models.ConditionFunc, error) {
	parsedArgs, err := utils.ParseArguments[EqualsArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	return Equals(parsedArgs.Value), nil
}

func newRefEquals(key string, args any) (models.ConditionFunc, error) {
	parsedArgs, err := utils.ValidateArguments[RefArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	return RefEquals(parsedArgs.Ref, parsedArgs.Value), nil
}

func newRefExists(key string, args any) (models.ConditionFunc, error) {
	parsedArgs, err := utils.ValidateArguments[RefArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	return RefExists(parsedArgs.Ref), nil
}

func newTag(key string, args any) (models.ConditionFunc, error) {
	parsedArgs, err := utils.ValidateArguments[TagArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	if err := utils.CheckTag(parsedArgs.Tag); err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	return Tag(parsedArgs.Tag), nil
}

func newRefTag(key string, args any) (models.ConditionFunc, error) {
	parsedArgs, err := utils.ValidateArguments[RefArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	if parsedArgs.Tag == "" {
		return nil, errors.NewPipelineError("tag is required").AddAction(key)
	}
	if err := utils.CheckTag(parsedArgs.Tag); err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	return RefTag(parsedArgs.Ref, parsedArgs.Tag), nil
}

func newValidate(key string, args any) (models.ConditionFunc, error) {
	parsedArgs, err := utils.ValidateArguments[ValidateArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}

	validator, err := NewValidator(parsedArgs.Rules...)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	return validator.Condition(), nil
}
