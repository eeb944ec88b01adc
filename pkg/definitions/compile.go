package definitions

import (
	"fmt"

	"github.com/Ramsey-B/reed/pkg/actions"
	"github.com/Ramsey-B/reed/pkg/actions/registry"
	"github.com/Ramsey-B/reed/pkg/conditions"
	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/pipeline"
)

// Compile builds a chain from a definition using the built-in actions and
// conditions plus anything registered with the registries.
func Compile(definition ChainDefinition) (pipeline.Chain, error) {
	actions.Register()

	chain, err := compileChain(definition)
	if err != nil {
		return pipeline.Chain{}, errors.WrapPipelineError(err).AddChain(definition.Name)
	}
	return chain, nil
}

// Load parses and compiles a definition in one call.
func Load(data []byte) (pipeline.Chain, error) {
	definition, err := Parse(data)
	if err != nil {
		return pipeline.Chain{}, err
	}
	return Compile(definition)
}

func compileChain(definition ChainDefinition) (pipeline.Chain, error) {
	chain := pipeline.New()
	if definition.Name != "" {
		chain = chain.Named(definition.Name)
	}

	chain, err := compileConditions(chain, definition.When)
	if err != nil {
		return chain, err
	}

	for i, step := range definition.Steps {
		switch {
		case step.Action != nil:
			fn, err := registry.GetAction(step.Action.Key, step.Action.Arguments)
			if err != nil {
				return chain, errors.WrapPipelineError(err).AddStep(fmt.Sprintf("%d:%s", i, step.Action.Key))
			}
			chain = chain.Step(step.Action.Key, fn)
		case step.Children != nil:
			chain, err = compileChildren(chain, step.Children)
			if err != nil {
				return chain, errors.WrapPipelineError(err).AddStep(fmt.Sprintf("%d:children", i))
			}
		default:
			return chain, errors.NewPipelineError("step sets neither action nor children").AddStep(fmt.Sprintf("%d", i))
		}
	}

	return chain, nil
}

func compileConditions(chain pipeline.Chain, definitions []ConditionDefinition) (pipeline.Chain, error) {
	for i, definition := range definitions {
		condition, err := conditions.GetCondition(definition.Key, definition.Arguments, definition.Invert)
		if err != nil {
			return chain, errors.WrapPipelineError(err).AddStep(fmt.Sprintf("when:%d", i))
		}
		chain = chain.When(condition)
	}
	return chain, nil
}

func compileChildren(chain pipeline.Chain, children *ChildrenDefinition) (pipeline.Chain, error) {
	if len(children.Fields) == 0 {
		transform, err := compileChain(ChainDefinition{When: children.When, Steps: children.Steps})
		if err != nil {
			return chain, err
		}
		return chain.Children(transform, children.LocalRefs), nil
	}

	fields := make(pipeline.FieldMap, 0, len(children.Fields))
	for _, field := range children.Fields {
		transform, err := compileChain(field.ChainDefinition)
		if err != nil {
			return chain, errors.WrapPipelineError(err).AddField(field.Field)
		}
		fields = append(fields, pipeline.Field(field.Field, transform))
	}
	return chain.ChildFields(fields, children.LocalRefs), nil
}
