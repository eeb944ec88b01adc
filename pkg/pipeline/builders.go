package pipeline

import (
	"context"
	"regexp"
	"time"

	"github.com/Ramsey-B/reed/pkg/actions"
	anyaction "github.com/Ramsey-B/reed/pkg/actions/any"
	"github.com/Ramsey-B/reed/pkg/actions/array"
	"github.com/Ramsey-B/reed/pkg/actions/date"
	"github.com/Ramsey-B/reed/pkg/actions/number"
	"github.com/Ramsey-B/reed/pkg/actions/object"
	"github.com/Ramsey-B/reed/pkg/actions/text"
	"github.com/Ramsey-B/reed/pkg/models"
)

// Text

func (c Chain) Trim() Chain      { return c.append(actions.TextTrimAction, text.Trim()) }
func (c Chain) TrimLeft() Chain  { return c.append(actions.TextTrimAction, text.TrimLeft()) }
func (c Chain) TrimRight() Chain { return c.append(actions.TextTrimAction, text.TrimRight()) }
func (c Chain) ToUpper() Chain   { return c.append(actions.TextToUpperAction, text.ToUpper()) }
func (c Chain) ToLower() Chain   { return c.append(actions.TextToLowerAction, text.ToLower()) }

func (c Chain) Replace(target, replacement string) Chain {
	return c.append(actions.TextReplaceAction, text.Replace(target, replacement))
}

func (c Chain) ReplaceAll(target, replacement string) Chain {
	return c.append(actions.TextReplaceAction, text.ReplaceAll(target, replacement))
}

func (c Chain) ReplaceRegex(re *regexp.Regexp, replacement string) Chain {
	return c.append(actions.TextRegexReplaceAction, text.ReplaceRegex(re, replacement))
}

func (c Chain) Split(sep string) Chain {
	return c.append(actions.TextSplitAction, text.Split(sep))
}

func (c Chain) SplitRegex(re *regexp.Regexp) Chain {
	return c.append(actions.TextSplitAction, text.SplitRegex(re))
}

// Keep takes capture group index group, counted from 0, of the first match.
func (c Chain) Keep(re *regexp.Regexp, group int) Chain {
	return c.append(actions.TextKeepAction, text.Keep(re, group))
}

func (c Chain) KeepNamed(re *regexp.Regexp, name string) Chain {
	return c.append(actions.TextKeepAction, text.KeepNamed(re, name))
}

func (c Chain) Pad(length int, char, side string) Chain {
	return c.append(actions.TextPadAction, text.Pad(length, char, side))
}

// Arrays

func (c Chain) Join(sep string) Chain {
	return c.append(actions.ArrayJoinAction, array.Join(sep))
}

func (c Chain) Slice(start int, end ...int) Chain {
	return c.append(actions.ArraySliceAction, array.Slice(start, end...))
}

func (c Chain) Map(fn func(item any, index int, items []any) any) Chain {
	return c.append("array_map", array.Map(fn))
}

func (c Chain) Filter(keep func(ctx context.Context, item any, index int, items []any) (bool, error)) Chain {
	return c.append("array_filter", array.Filter(keep))
}

func (c Chain) FilterBy(p models.Predicate) Chain {
	return c.append("array_filter", array.FilterBy(p))
}

func (c Chain) Reduce(fn func(acc, item any, index int, items []any) any) Chain {
	return c.append("array_reduce", array.Reduce(fn))
}

func (c Chain) Sort(compare ...func(a, b any) int) Chain {
	return c.append(actions.ArraySortAction, array.Sort(compare...))
}

func (c Chain) Distinct() Chain { return c.append(actions.ArrayDistinctAction, array.Distinct()) }
func (c Chain) Reverse() Chain  { return c.append(actions.ArrayReverseAction, array.Reverse()) }

// Objects

func (c Chain) Keys() Chain   { return c.append(actions.ObjectKeysAction, object.Keys()) }
func (c Chain) Values() Chain { return c.append(actions.ObjectValuesAction, object.Values()) }

func (c Chain) Pick(keys ...string) Chain {
	return c.append(actions.ObjectPickAction, object.Pick(keys...))
}

func (c Chain) Omit(keys ...string) Chain {
	return c.append(actions.ObjectOmitAction, object.Omit(keys...))
}

// Numbers

func (c Chain) Increment(by float64) Chain {
	return c.append(actions.NumberIncrementAction, number.Increment(by))
}

func (c Chain) IncrementRef(ref string) Chain {
	return c.append(actions.NumberIncrementAction, number.IncrementRef(ref))
}

func (c Chain) Decrement(by float64) Chain {
	return c.append(actions.NumberDecrementAction, number.Decrement(by))
}

func (c Chain) DecrementRef(ref string) Chain {
	return c.append(actions.NumberDecrementAction, number.DecrementRef(ref))
}

func (c Chain) Multiply(by float64) Chain {
	return c.append(actions.NumberMultiplyAction, number.Multiply(by))
}

func (c Chain) MultiplyRef(ref string) Chain {
	return c.append(actions.NumberMultiplyAction, number.MultiplyRef(ref))
}

func (c Chain) Divide(by float64) Chain {
	return c.append(actions.NumberDivideAction, number.Divide(by))
}

func (c Chain) DivideRef(ref string) Chain {
	return c.append(actions.NumberDivideAction, number.DivideRef(ref))
}

func (c Chain) Mod(by float64) Chain {
	return c.append(actions.NumberModAction, number.Mod(by))
}

func (c Chain) ModRef(ref string) Chain {
	return c.append(actions.NumberModAction, number.ModRef(ref))
}

func (c Chain) Round() Chain  { return c.append(actions.NumberRoundAction, number.Round()) }
func (c Chain) Ceil() Chain   { return c.append(actions.NumberCeilAction, number.Ceil()) }
func (c Chain) Floor() Chain  { return c.append(actions.NumberFloorAction, number.Floor()) }
func (c Chain) Abs() Chain    { return c.append(actions.NumberAbsAction, number.Abs()) }
func (c Chain) Negate() Chain { return c.append(actions.NumberNegateAction, number.Negate()) }

func (c Chain) Min(values ...float64) Chain {
	return c.append(actions.NumberMinAction, number.Min(values...))
}

func (c Chain) MinRef(refs ...string) Chain {
	return c.append(actions.NumberMinAction, number.MinRef(refs...))
}

func (c Chain) Max(values ...float64) Chain {
	return c.append(actions.NumberMaxAction, number.Max(values...))
}

func (c Chain) MaxRef(refs ...string) Chain {
	return c.append(actions.NumberMaxAction, number.MaxRef(refs...))
}

// Dates

// Format renders dates with Luxon-style tokens in local time.
func (c Chain) Format(tokens string) Chain {
	return c.append(actions.DateFormatAction, date.Format(tokens))
}

func (c Chain) FormatIn(tokens string, loc *time.Location) Chain {
	return c.append(actions.DateFormatAction, date.FormatIn(tokens, loc))
}

func (c Chain) ToDate() Chain {
	return c.append(actions.DateToDateAction, date.ToDate())
}

// Conversion and constants

func (c Chain) ToNumber() Chain  { return c.append(actions.AnyToNumberAction, anyaction.ToNumber()) }
func (c Chain) ToString() Chain  { return c.append(actions.AnyToStringAction, anyaction.ToString()) }
func (c Chain) ToBoolean() Chain { return c.append(actions.AnyToBooleanAction, anyaction.ToBoolean()) }

func (c Chain) Set(value any) Chain {
	return c.append(actions.AnySetAction, anyaction.Set(value))
}

func (c Chain) SetRef(ref string) Chain {
	return c.append(actions.AnySetRefAction, anyaction.SetRef(ref))
}

func (c Chain) Default(value any) Chain {
	return c.append(actions.AnyDefaultAction, anyaction.Default(value))
}
