package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validator exposes the shared validator so predicates built on validation
// tags reuse its cached struct metadata.
func Validator() *validator.Validate {
	return validate
}

// ParseArguments converts loosely typed step arguments (usually a decoded
// YAML/JSON map) into T. nil arguments yield the zero T.
func ParseArguments[T any](args any) (T, error) {
	var result T

	if args == nil {
		return result, nil
	}

	if arg, ok := args.(T); ok {
		return arg, nil
	}

	if arg, ok := args.(*T); ok && arg != nil {
		return *arg, nil
	}

	b, err := json.Marshal(args)
	if err != nil {
		return result, fmt.Errorf("argument %v cannot be encoded: %w", args, err)
	}

	if err = json.Unmarshal(b, &result); err != nil {
		return result, fmt.Errorf("argument %v is not a valid %T", args, result)
	}

	return result, nil
}

// ValidateArguments parses args into T and checks its `validate` tags.
func ValidateArguments[T any](args any) (T, error) {
	result, err := ParseArguments[T](args)
	if err != nil {
		return result, err
	}

	if err = validate.Struct(result); err != nil {
		return result, ValidationErrorToString(result, err)
	}

	return result, nil
}

func Validate[T any](value T) (T, error) {
	if err := validate.Struct(value); err != nil {
		return value, ValidationErrorToString(value, err)
	}

	return value, nil
}

// ValidateValue checks a single value against a validator tag such as
// "required,email". A tag naming an unknown rule is returned as an error.
func ValidateValue(value any, tag string) error {
	result, invalid := validateVar(value, tag)
	if invalid != nil {
		return invalid
	}
	if result != nil {
		return ValidationErrorToString(value, result)
	}
	return nil
}

// CheckTag reports a tag the validator cannot parse without validating
// anything.
func CheckTag(tag string) error {
	_, invalid := validateVar(nil, tag)
	return invalid
}

// validateVar recovers the panic the validator raises for unknown rules.
func validateVar(value any, tag string) (result, invalid error) {
	defer func() {
		if r := recover(); r != nil {
			invalid = fmt.Errorf("invalid validation tag '%s': %v", tag, r)
		}
	}()
	return validate.Var(value, tag), nil
}

func ValidationErrorToString(input any, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	lines := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.StructField()
		if field == "" {
			field = "value"
		}
		lines = append(lines, fmt.Sprintf("failed %T validation for field '%s': rule '%s' expected '%s', got '%v'", input, field, fe.Tag(), fe.Param(), fe.Value()))
	}

	return errors.New(strings.Join(lines, "; "))
}
