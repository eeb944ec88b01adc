package conditions

import (
	"context"
	"fmt"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

// Rule checks one path of the value against a validator tag. An empty Path
// checks the value itself.
type Rule struct {
	Path string `json:"path" yaml:"path"`
	Tag  string `json:"tag" yaml:"tag" validate:"required"`
}

// Validator is a set of rules compiled once and checked together against
// the value. The first failing rule stops the check.
type Validator struct {
	rules []Rule
}

func NewValidator(rules ...Rule) (*Validator, error) {
	for i, rule := range rules {
		if _, err := utils.Validate(rule); err != nil {
			return nil, errors.NewPipelineErrorf("rule %d: %w", i, err)
		}
		if err := utils.CheckTag(rule.Tag); err != nil {
			return nil, errors.NewPipelineErrorf("rule %d: %w", i, err)
		}
	}
	return &Validator{rules: rules}, nil
}

// Condition implements models.Predicate.
func (v *Validator) Condition() models.ConditionFunc {
	return func(_ context.Context, value, _ any) (bool, error) {
		for _, rule := range v.rules {
			target := value
			if rule.Path != "" {
				target = utils.Ref(rule.Path, value)
			}

			if err := utils.ValidateValue(unwrapEmpty(target), rule.Tag); err != nil {
				if rule.Path == "" {
					return false, err
				}
				return false, fmt.Errorf("%s: %w", rule.Path, err)
			}
		}
		return true, nil
	}
}
