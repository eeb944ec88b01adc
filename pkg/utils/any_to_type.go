package utils

import (
	"fmt"
	"reflect"

	"github.com/Ramsey-B/reed/pkg/models"
)

// AnyToType converts input to T without weak coercion: direct assertions and
// numeric widening only. nil and models.Empty yield the zero value.
func AnyToType[T any](input any) (T, error) {
	var zero T

	if input == nil || models.IsEmpty(input) {
		return zero, nil
	}

	if result, ok := input.(T); ok {
		return result, nil
	}

	targetType := reflect.TypeOf(zero)
	// T is an interface type, nothing to convert to
	if targetType == nil {
		return zero, fmt.Errorf("type mismatch: expected %T, got %T", zero, input)
	}

	inputValue := reflect.ValueOf(input)

	if targetType == reflect.TypeOf([]any{}) {
		if slice, ok := ToAnySlice(input); ok {
			if converted, ok := any(slice).(T); ok {
				return converted, nil
			}
		}
	}

	// avoid int -> string (rune) style conversions
	if isNumericKind(inputValue.Kind()) && isNumericKind(targetType.Kind()) && inputValue.Type().ConvertibleTo(targetType) {
		converted := inputValue.Convert(targetType)
		if result, ok := converted.Interface().(T); ok {
			return result, nil
		}
	}

	return zero, fmt.Errorf("type mismatch: expected %T, got %T", zero, input)
}

// ToAnySlice returns input as a []any. A []any is returned as is so writes
// reach the caller's container; other slice kinds are copied.
func ToAnySlice(input any) ([]any, bool) {
	if slice, ok := input.([]any); ok {
		return slice, true
	}

	rv := reflect.ValueOf(input)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	result := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		result[i] = rv.Index(i).Interface()
	}

	return result, true
}

// ToObject returns input as a map[string]any. A map[string]any is returned
// as is; other string keyed maps are copied.
func ToObject(input any) (map[string]any, bool) {
	if object, ok := input.(map[string]any); ok {
		return object, true
	}

	rv := reflect.ValueOf(input)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	result := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		result[iter.Key().String()] = iter.Value().Interface()
	}

	return result, true
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
