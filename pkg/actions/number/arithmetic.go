// Package number holds the arithmetic steps. Every step coerces its input
// with utils.ToNumber, so they never produce Empty: null counts as 0 and
// anything non-numeric becomes NaN.
package number

import (
	"math"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

// NumberArithmeticArguments takes either a literal operand or a reference
// into the raw values.
type NumberArithmeticArguments struct {
	By  *float64 `json:"by"`
	Ref string   `json:"ref"`
}

type operator func(a, b float64) float64

var (
	add      operator = func(a, b float64) float64 { return a + b }
	subtract operator = func(a, b float64) float64 { return a - b }
	multiply operator = func(a, b float64) float64 { return a * b }
	divide   operator = func(a, b float64) float64 { return a / b }
	modulus  operator = math.Mod
)

func Increment(by float64) models.StepFunc { return literal(add, by) }
func Decrement(by float64) models.StepFunc { return literal(subtract, by) }
func Multiply(by float64) models.StepFunc  { return literal(multiply, by) }
func Divide(by float64) models.StepFunc    { return literal(divide, by) }

// Mod keeps the sign of the dividend.
func Mod(by float64) models.StepFunc { return literal(modulus, by) }

func IncrementRef(ref string) models.StepFunc { return reference(add, ref) }
func DecrementRef(ref string) models.StepFunc { return reference(subtract, ref) }
func MultiplyRef(ref string) models.StepFunc  { return reference(multiply, ref) }
func DivideRef(ref string) models.StepFunc    { return reference(divide, ref) }
func ModRef(ref string) models.StepFunc       { return reference(modulus, ref) }

func literal(op operator, operand float64) models.StepFunc {
	return models.Pure(func(value any) any {
		return op(utils.ToNumber(value), operand)
	})
}

func reference(op operator, ref string) models.StepFunc {
	return models.WithRaw(func(value, raw any) any {
		return op(utils.ToNumber(value), utils.ToNumber(utils.Ref(ref, raw)))
	})
}

func NewNumberIncrementStep(key string, args any) (models.StepFunc, error) {
	return newArithmeticStep(key, args, Increment, IncrementRef)
}

func NewNumberDecrementStep(key string, args any) (models.StepFunc, error) {
	return newArithmeticStep(key, args, Decrement, DecrementRef)
}

func NewNumberMultiplyStep(key string, args any) (models.StepFunc, error) {
	return newArithmeticStep(key, args, Multiply, MultiplyRef)
}

func NewNumberDivideStep(key string, args any) (models.StepFunc, error) {
	return newArithmeticStep(key, args, Divide, DivideRef)
}

func NewNumberModStep(key string, args any) (models.StepFunc, error) {
	return newArithmeticStep(key, args, Mod, ModRef)
}

func newArithmeticStep(key string, args any, byValue func(float64) models.StepFunc, byRef func(string) models.StepFunc) (models.StepFunc, error) {
	parsedArgs, err := utils.ValidateArguments[NumberArithmeticArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}

	switch {
	case parsedArgs.By != nil && parsedArgs.Ref != "":
		return nil, errors.NewPipelineError("only one of by or ref may be set").AddAction(key)
	case parsedArgs.By != nil:
		return byValue(*parsedArgs.By), nil
	case parsedArgs.Ref != "":
		return byRef(parsedArgs.Ref), nil
	}

	return nil, errors.NewPipelineError("either by or ref is required").AddAction(key)
}
