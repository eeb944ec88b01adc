package utils

// AssignMapValue writes value at a dotted path inside target, creating
// intermediate objects as needed. Array indexes along the path are written
// in place when they exist; a path that cannot be written is left untouched.
func AssignMapValue(target map[string]any, path string, value any) map[string]any {
	if path == "" {
		return target
	}

	segments, ok := SplitPath(path)
	if !ok {
		return target
	}

	assign(target, segments, value)
	return target
}

func assign(container any, segments []string, value any) bool {
	head := segments[0]
	last := len(segments) == 1

	switch c := container.(type) {
	case map[string]any:
		if last {
			c[head] = value
			return true
		}

		next, exists := c[head]
		if !exists || !isWritableContainer(next) {
			next = map[string]any{}
			c[head] = next
		}
		return assign(next, segments[1:], value)
	case []any:
		index, ok := parseIndex(head, len(c))
		if !ok {
			return false
		}

		if last {
			c[index] = value
			return true
		}

		if !isWritableContainer(c[index]) {
			c[index] = map[string]any{}
		}
		return assign(c[index], segments[1:], value)
	}

	return false
}

func isWritableContainer(value any) bool {
	switch value.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}
