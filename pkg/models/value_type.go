package models

import (
	"reflect"
	"time"
)

// Kind is the closed set of value shapes a step can dispatch on.
type Kind string

const (
	KindEmpty  Kind = "empty"
	KindNull   Kind = "null"
	KindBool   Kind = "bool"
	KindNumber Kind = "number"
	KindString Kind = "string"
	KindArray  Kind = "array"
	KindObject Kind = "object"
	KindDate   Kind = "date"
	KindOther  Kind = "other"
)

type emptyValue struct{}

func (emptyValue) String() string {
	return "<empty>"
}

// MarshalJSON renders Empty as null so results can always be encoded.
func (emptyValue) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// Empty marks a step result as "not applicable". It is distinct from nil,
// which pipelines carry as ordinary null data.
var Empty any = emptyValue{}

// IsEmpty reports whether v is the Empty sentinel.
func IsEmpty(v any) bool {
	_, ok := v.(emptyValue)
	return ok
}

// KindOf classifies a value once so steps can switch on it.
func KindOf(value any) Kind {
	switch value.(type) {
	case emptyValue:
		return KindEmpty
	case nil:
		return KindNull
	case bool:
		return KindBool
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	case time.Time:
		return KindDate
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindObject
		}
	case reflect.Ptr:
		if rv.IsNil() {
			return KindNull
		}
	}

	return KindOther
}

// Is reports whether value has one of the given kinds.
func Is(value any, kinds ...Kind) bool {
	kind := KindOf(value)
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
