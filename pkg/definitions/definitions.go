// Package definitions describes chains as YAML or JSON documents and
// compiles them through the action and condition registries.
package definitions

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/utils"
)

type ChainDefinition struct {
	Name  string                `json:"name,omitempty" yaml:"name,omitempty"`
	When  []ConditionDefinition `json:"when,omitempty" yaml:"when,omitempty" validate:"dive"`
	Steps []StepDefinition      `json:"steps" yaml:"steps" validate:"dive"`
}

// ConditionDefinition names a registered condition.
type ConditionDefinition struct {
	Key       string `json:"key" yaml:"key" validate:"required"`
	Arguments any    `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Invert    bool   `json:"invert,omitempty" yaml:"invert,omitempty"`
}

// StepDefinition holds exactly one of Action or Children.
type StepDefinition struct {
	Action   *ActionDefinition   `json:"action,omitempty" yaml:"action,omitempty"`
	Children *ChildrenDefinition `json:"children,omitempty" yaml:"children,omitempty"`
}

type ActionDefinition struct {
	Key       string `json:"key" yaml:"key" validate:"required"`
	Arguments any    `json:"arguments,omitempty" yaml:"arguments,omitempty"`
}

// ChildrenDefinition transforms the elements of an array or an object.
// Either Steps (with optional When) apply to each element as a whole, or
// Fields apply per field.
type ChildrenDefinition struct {
	LocalRefs bool                  `json:"local_refs,omitempty" yaml:"local_refs,omitempty"`
	When      []ConditionDefinition `json:"when,omitempty" yaml:"when,omitempty" validate:"dive"`
	Steps     []StepDefinition      `json:"steps,omitempty" yaml:"steps,omitempty" validate:"dive"`
	Fields    []FieldDefinition     `json:"fields,omitempty" yaml:"fields,omitempty" validate:"dive"`
}

type FieldDefinition struct {
	Field           string `json:"field" yaml:"field" validate:"required"`
	ChainDefinition `yaml:",inline"`
}

// Parse reads a chain definition from YAML or JSON and validates it.
func Parse(data []byte) (ChainDefinition, error) {
	var definition ChainDefinition
	if err := yaml.Unmarshal(data, &definition); err != nil {
		return definition, errors.NewPipelineErrorf("invalid definition: %w", err)
	}

	if err := Validate(definition); err != nil {
		return definition, err
	}
	return definition, nil
}

func ParseFile(path string) (ChainDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ChainDefinition{}, err
	}
	return Parse(data)
}

// Validate checks struct tags and that every step sets exactly one of
// action or children.
func Validate(definition ChainDefinition) error {
	if _, err := utils.Validate(definition); err != nil {
		return errors.WrapPipelineError(err).AddChain(definition.Name)
	}

	if err := validateSteps(definition.Steps); err != nil {
		return errors.WrapPipelineError(err).AddChain(definition.Name)
	}
	return nil
}

func validateSteps(steps []StepDefinition) error {
	for i, step := range steps {
		stepID := fmt.Sprintf("%d", i)

		switch {
		case step.Action != nil && step.Children != nil:
			return errors.NewPipelineError("step sets both action and children").AddStep(stepID)
		case step.Action != nil:
			continue
		case step.Children == nil:
			return errors.NewPipelineError("step sets neither action nor children").AddStep(stepID)
		}

		children := step.Children
		if len(children.Fields) > 0 && (len(children.Steps) > 0 || len(children.When) > 0) {
			return errors.NewPipelineError("children sets both fields and steps").AddStep(stepID)
		}

		if err := validateSteps(children.Steps); err != nil {
			return errors.WrapPipelineError(err).AddStep(stepID)
		}

		for _, field := range children.Fields {
			if err := validateSteps(field.Steps); err != nil {
				return errors.WrapPipelineError(err).AddField(field.Field).AddStep(stepID)
			}
		}
	}
	return nil
}
