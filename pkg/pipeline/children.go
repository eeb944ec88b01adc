package pipeline

import (
	"context"
	"sort"

	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

// FieldTransform pairs an object field with the transform applied to it.
type FieldTransform struct {
	Name      string
	Transform models.Compilable
}

// FieldMap is an ordered set of per-field transforms. Fields run in the
// order they are listed.
type FieldMap []FieldTransform

func Field(name string, transform models.Compilable) FieldTransform {
	return FieldTransform{Name: name, Transform: transform}
}

func Fields(fields ...FieldTransform) FieldMap {
	return FieldMap(fields)
}

// FieldsFromMap builds a FieldMap ordered by field name.
func FieldsFromMap(transforms map[string]models.Compilable) FieldMap {
	names := make([]string, 0, len(transforms))
	for name := range transforms {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make(FieldMap, len(names))
	for i, name := range names {
		fields[i] = Field(name, transforms[name])
	}
	return fields
}

type compiledField struct {
	name string
	fn   models.StepFunc
}

// ChildrenStep applies t to every element of an array, or to an object as a
// whole. With localRefs the element itself is passed as the raw values,
// otherwise the enclosing raw values are. Arrays are updated in place.
// Anything that is not an array or object becomes Empty. A nil t keeps
// elements as they are.
func ChildrenStep(t models.Compilable, localRefs bool) models.StepFunc {
	transform := compile(t)

	return func(ctx context.Context, value, raw any) (any, error) {
		switch models.KindOf(value) {
		case models.KindArray:
			items, _ := utils.ToAnySlice(value)
			for i, item := range items {
				result, err := transform(ctx, item, scope(item, raw, localRefs))
				if err != nil {
					return nil, errors.WrapPipelineError(err).AddItemIndex(i)
				}
				items[i] = result
			}
			return items, nil
		case models.KindObject:
			return transform(ctx, value, scope(value, raw, localRefs))
		}
		return models.Empty, nil
	}
}

// ChildFieldsStep replaces the listed fields of an object, or of every
// object in an array, in place. Fields missing from an object are
// transformed from Empty. Array elements that are not objects become Empty.
// Anything that is not an array or object becomes Empty.
func ChildFieldsStep(fields FieldMap, localRefs bool) models.StepFunc {
	compiled := make([]compiledField, len(fields))
	for i, field := range fields {
		compiled[i] = compiledField{name: field.Name, fn: compile(field.Transform)}
	}

	return func(ctx context.Context, value, raw any) (any, error) {
		switch models.KindOf(value) {
		case models.KindArray:
			items, _ := utils.ToAnySlice(value)
			for i, item := range items {
				if !models.Is(item, models.KindObject) {
					items[i] = models.Empty
					continue
				}

				obj, _ := utils.ToObject(item)
				if err := applyFields(ctx, compiled, obj, scope(obj, raw, localRefs)); err != nil {
					return nil, errors.WrapPipelineError(err).AddItemIndex(i)
				}
				items[i] = obj
			}
			return items, nil
		case models.KindObject:
			obj, _ := utils.ToObject(value)
			if err := applyFields(ctx, compiled, obj, scope(obj, raw, localRefs)); err != nil {
				return nil, err
			}
			return obj, nil
		}
		return models.Empty, nil
	}
}

func applyFields(ctx context.Context, fields []compiledField, obj map[string]any, raw any) error {
	for _, field := range fields {
		current, ok := obj[field.name]
		if !ok {
			current = models.Empty
		}

		result, err := field.fn(ctx, current, raw)
		if err != nil {
			return errors.WrapPipelineError(err).AddField(field.name)
		}
		obj[field.name] = result
	}
	return nil
}

// compile treats a nil transform as one that returns its input.
func compile(t models.Compilable) models.StepFunc {
	if t == nil {
		return identity
	}
	if fn := t.Compile(); fn != nil {
		return fn
	}
	return identity
}

func identity(_ context.Context, value, _ any) (any, error) {
	return value, nil
}

func scope(local, raw any, localRefs bool) any {
	if localRefs {
		return local
	}
	return raw
}

// Children appends a ChildrenStep.
func (c Chain) Children(t models.Compilable, localRefs bool) Chain {
	return c.append("children", ChildrenStep(t, localRefs))
}

// ChildFields appends a ChildFieldsStep.
func (c Chain) ChildFields(fields FieldMap, localRefs bool) Chain {
	return c.append("children", ChildFieldsStep(fields, localRefs))
}
