package utils

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/Ramsey-B/reed/pkg/models"
)

const (
	SplitToken     = "."
	IndexCloseChar = "]"
	IndexOpenChar  = "["
)

// ResolveRef walks raw along a dotted path such as "a.b.1" or "a.b[1]".
// Each segment is a map key, struct field or array index. The second return
// is false as soon as a segment is missing or the current value cannot be
// indexed; a malformed path is just a miss. An empty path yields raw itself.
func ResolveRef(path string, raw any) (any, bool) {
	if path == "" {
		return raw, true
	}

	segments, ok := SplitPath(path)
	if !ok {
		return nil, false
	}

	current := raw
	for _, segment := range segments {
		current, ok = lookup(current, segment)
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// Ref is ResolveRef with a miss reported as models.Empty.
func Ref(path string, raw any) any {
	value, ok := ResolveRef(path, raw)
	if !ok {
		return models.Empty
	}
	return value
}

// SplitPath splits a reference path into segments, expanding bracket
// indexes so "items[2].name" becomes ["items", "2", "name"].
func SplitPath(path string) ([]string, bool) {
	parts := strings.Split(path, SplitToken)
	segments := make([]string, 0, len(parts))

	for _, part := range parts {
		if !strings.Contains(part, IndexOpenChar) && !strings.Contains(part, IndexCloseChar) {
			segments = append(segments, part)
			continue
		}

		for part != "" {
			start := strings.Index(part, IndexOpenChar)
			if start == -1 {
				return nil, false
			}

			end := strings.Index(part, IndexCloseChar)
			if end < start {
				return nil, false
			}

			if start > 0 {
				segments = append(segments, part[:start])
			}

			segments = append(segments, part[start+1:end])
			part = part[end+1:]
		}
	}

	return segments, true
}

func lookup(value any, segment string) (any, bool) {
	switch v := value.(type) {
	case map[string]any:
		result, ok := v[segment]
		return result, ok
	case []any:
		index, ok := parseIndex(segment, len(v))
		if !ok {
			return nil, false
		}
		return v[index], true
	case nil:
		return nil, false
	}

	if models.IsEmpty(value) {
		return nil, false
	}

	return lookupReflect(reflect.ValueOf(value), segment)
}

func lookupReflect(v reflect.Value, segment string) (any, bool) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		result := v.MapIndex(reflect.ValueOf(segment).Convert(v.Type().Key()))
		if !result.IsValid() {
			return nil, false
		}
		return result.Interface(), true
	case reflect.Slice, reflect.Array:
		index, ok := parseIndex(segment, v.Len())
		if !ok {
			return nil, false
		}
		return v.Index(index).Interface(), true
	case reflect.Struct:
		field := v.FieldByName(segment)
		if !field.IsValid() || !field.CanInterface() {
			return nil, false
		}
		return field.Interface(), true
	}

	return nil, false
}

func parseIndex(segment string, length int) (int, bool) {
	if segment == "" {
		return 0, false
	}

	for _, r := range segment {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	index, err := strconv.Atoi(segment)
	if err != nil || index >= length {
		return 0, false
	}

	return index, true
}
