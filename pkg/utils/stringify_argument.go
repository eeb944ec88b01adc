package utils

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// StringifyArgument renders step arguments as "key=value,..." for error
// messages. Map keys are sorted so messages are stable.
func StringifyArgument(argument any) string {
	if argument == nil {
		return ""
	}

	v := reflect.ValueOf(argument)
	if !v.IsValid() || v.IsZero() {
		return ""
	}

	if argumentMap, ok := argument.(map[string]any); ok {
		keys := make([]string, 0, len(argumentMap))
		for key := range argumentMap {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", key, argumentMap[key]))
		}
		return strings.Join(parts, ",")
	}

	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return fmt.Sprintf("%v", argument)
	}

	t := v.Type()
	parts := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			name = field.Name
		}

		value := v.Field(i)
		if value.Kind() == reflect.Ptr {
			if value.IsNil() {
				continue
			}
			value = value.Elem()
		}

		parts = append(parts, fmt.Sprintf("%s=%v", name, value.Interface()))
	}

	return strings.Join(parts, ",")
}
