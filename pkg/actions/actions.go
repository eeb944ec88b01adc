package actions

import (
	"sync"

	anyaction "github.com/Ramsey-B/reed/pkg/actions/any"
	"github.com/Ramsey-B/reed/pkg/actions/array"
	"github.com/Ramsey-B/reed/pkg/actions/date"
	"github.com/Ramsey-B/reed/pkg/actions/number"
	"github.com/Ramsey-B/reed/pkg/actions/object"
	"github.com/Ramsey-B/reed/pkg/actions/registry"
	"github.com/Ramsey-B/reed/pkg/actions/text"
)

const (
	// Any Action Keys
	AnySetAction       = "any_set"
	AnySetRefAction    = "any_set_ref"
	AnyDefaultAction   = "any_default"
	AnyToNumberAction  = "any_to_number"
	AnyToStringAction  = "any_to_string"
	AnyToBooleanAction = "any_to_boolean"

	// Array Action Keys
	ArrayJoinAction     = "array_join"
	ArraySliceAction    = "array_slice"
	ArraySortAction     = "array_sort"
	ArrayDistinctAction = "array_distinct"
	ArrayReverseAction  = "array_reverse"

	// Date Action Keys
	DateFormatAction = "date_format"
	DateToDateAction = "date_to_date"

	// Number Action Keys
	NumberIncrementAction = "number_increment"
	NumberDecrementAction = "number_decrement"
	NumberMultiplyAction  = "number_multiply"
	NumberDivideAction    = "number_divide"
	NumberModAction       = "number_mod"
	NumberRoundAction     = "number_round"
	NumberCeilAction      = "number_ceil"
	NumberFloorAction     = "number_floor"
	NumberAbsAction       = "number_abs"
	NumberNegateAction    = "number_negate"
	NumberMinAction       = "number_min"
	NumberMaxAction       = "number_max"

	// Object Action Keys
	ObjectKeysAction   = "object_keys"
	ObjectValuesAction = "object_values"
	ObjectPickAction   = "object_pick"
	ObjectOmitAction   = "object_omit"

	// Text Action Keys
	TextTrimAction         = "text_trim"
	TextToUpperAction      = "text_to_upper"
	TextToLowerAction      = "text_to_lower"
	TextReplaceAction      = "text_replace"
	TextRegexReplaceAction = "text_regex_replace"
	TextSplitAction        = "text_split"
	TextKeepAction         = "text_keep"
	TextPadAction          = "text_pad"
)

var ActionDefinitions = map[string]registry.ActionDefinition{
	AnySetAction: {
		Key:         AnySetAction,
		Name:        "Set",
		Description: "Replaces the value with a constant",
		Factory:     anyaction.NewSetStep,
	},
	AnySetRefAction: {
		Key:         AnySetRefAction,
		Name:        "Set Reference",
		Description: "Replaces the value with the raw value at a path",
		Factory:     anyaction.NewSetRefStep,
	},
	AnyDefaultAction: {
		Key:         AnyDefaultAction,
		Name:        "Default",
		Description: "Replaces null or empty values with a default",
		Factory:     anyaction.NewDefaultValueStep,
	},
	AnyToNumberAction: {
		Key:         AnyToNumberAction,
		Name:        "To Number",
		Description: "Coerces the value to a number",
		Factory:     anyaction.NewToNumberStep,
	},
	AnyToStringAction: {
		Key:         AnyToStringAction,
		Name:        "To String",
		Description: "Coerces the value to a string",
		Factory:     anyaction.NewToStringStep,
	},
	AnyToBooleanAction: {
		Key:         AnyToBooleanAction,
		Name:        "To Boolean",
		Description: "Coerces the value to its truthiness",
		Factory:     anyaction.NewToBooleanStep,
	},
	ArrayJoinAction: {
		Key:         ArrayJoinAction,
		Name:        "Array Join",
		Description: "Joins array elements into a string",
		Factory:     array.NewArrayJoinStep,
	},
	ArraySliceAction: {
		Key:         ArraySliceAction,
		Name:        "Array Slice",
		Description: "Takes part of an array or string",
		Factory:     array.NewArraySliceStep,
	},
	ArraySortAction: {
		Key:         ArraySortAction,
		Name:        "Array Sort",
		Description: "Sorts an array in place by string form",
		Factory:     array.NewArraySortStep,
	},
	ArrayDistinctAction: {
		Key:         ArrayDistinctAction,
		Name:        "Array Distinct",
		Description: "Removes duplicate elements",
		Factory:     array.NewArrayDistinctStep,
	},
	ArrayReverseAction: {
		Key:         ArrayReverseAction,
		Name:        "Array Reverse",
		Description: "Reverses the order of elements",
		Factory:     array.NewArrayReverseStep,
	},
	DateFormatAction: {
		Key:         DateFormatAction,
		Name:        "Date Format",
		Description: "Formats a date with Luxon-style tokens",
		Factory:     date.NewDateFormatStep,
	},
	DateToDateAction: {
		Key:         DateToDateAction,
		Name:        "To Date",
		Description: "Converts a string or epoch milliseconds to a date",
		Factory:     date.NewDateToDateStep,
	},
	NumberIncrementAction: {
		Key:         NumberIncrementAction,
		Name:        "Number Increment",
		Description: "Adds a constant or referenced number",
		Factory:     number.NewNumberIncrementStep,
	},
	NumberDecrementAction: {
		Key:         NumberDecrementAction,
		Name:        "Number Decrement",
		Description: "Subtracts a constant or referenced number",
		Factory:     number.NewNumberDecrementStep,
	},
	NumberMultiplyAction: {
		Key:         NumberMultiplyAction,
		Name:        "Number Multiply",
		Description: "Multiplies by a constant or referenced number",
		Factory:     number.NewNumberMultiplyStep,
	},
	NumberDivideAction: {
		Key:         NumberDivideAction,
		Name:        "Number Divide",
		Description: "Divides by a constant or referenced number",
		Factory:     number.NewNumberDivideStep,
	},
	NumberModAction: {
		Key:         NumberModAction,
		Name:        "Number Modulus",
		Description: "Remainder after dividing by a constant or referenced number",
		Factory:     number.NewNumberModStep,
	},
	NumberRoundAction: {
		Key:         NumberRoundAction,
		Name:        "Number Round",
		Description: "Rounds to a number of decimal places",
		Factory:     number.NewNumberRoundStep,
	},
	NumberCeilAction: {
		Key:         NumberCeilAction,
		Name:        "Number Ceiling",
		Description: "Rounds up to the nearest integer",
		Factory:     number.NewNumberCeilStep,
	},
	NumberFloorAction: {
		Key:         NumberFloorAction,
		Name:        "Number Floor",
		Description: "Rounds down to the nearest integer",
		Factory:     number.NewNumberFloorStep,
	},
	NumberAbsAction: {
		Key:         NumberAbsAction,
		Name:        "Number Absolute",
		Description: "Absolute value of a number",
		Factory:     number.NewNumberAbsStep,
	},
	NumberNegateAction: {
		Key:         NumberNegateAction,
		Name:        "Number Negate",
		Description: "Flips the sign of a number",
		Factory:     number.NewNumberNegateStep,
	},
	NumberMinAction: {
		Key:         NumberMinAction,
		Name:        "Number Min",
		Description: "Smallest of the value and the given numbers",
		Factory:     number.NewNumberMinStep,
	},
	NumberMaxAction: {
		Key:         NumberMaxAction,
		Name:        "Number Max",
		Description: "Largest of the value and the given numbers",
		Factory:     number.NewNumberMaxStep,
	},
	ObjectKeysAction: {
		Key:         ObjectKeysAction,
		Name:        "Object Keys",
		Description: "Lists object keys or array indexes",
		Factory:     object.NewObjectKeysStep,
	},
	ObjectValuesAction: {
		Key:         ObjectValuesAction,
		Name:        "Object Values",
		Description: "Lists object values ordered by key",
		Factory:     object.NewObjectValuesStep,
	},
	ObjectPickAction: {
		Key:         ObjectPickAction,
		Name:        "Object Pick",
		Description: "Keeps only the listed keys",
		Factory:     object.NewObjectPickStep,
	},
	ObjectOmitAction: {
		Key:         ObjectOmitAction,
		Name:        "Object Omit",
		Description: "Removes the listed keys",
		Factory:     object.NewObjectOmitStep,
	},
	TextTrimAction: {
		Key:         TextTrimAction,
		Name:        "Text Trim",
		Description: "Trims whitespace or characters from text",
		Factory:     text.NewTextTrimStep,
	},
	TextToUpperAction: {
		Key:         TextToUpperAction,
		Name:        "Text To Upper",
		Description: "Converts text to upper case",
		Factory:     text.NewTextToUpperStep,
	},
	TextToLowerAction: {
		Key:         TextToLowerAction,
		Name:        "Text To Lower",
		Description: "Converts text to lower case",
		Factory:     text.NewTextToLowerStep,
	},
	TextReplaceAction: {
		Key:         TextReplaceAction,
		Name:        "Text Replace",
		Description: "Replaces the first or every occurrence of a substring",
		Factory:     text.NewTextReplaceStep,
	},
	TextRegexReplaceAction: {
		Key:         TextRegexReplaceAction,
		Name:        "Text Regex Replace",
		Description: "Replaces matches in text using a regular expression",
		Factory:     text.NewTextRegexReplaceStep,
	},
	TextSplitAction: {
		Key:         TextSplitAction,
		Name:        "Text Split",
		Description: "Splits text on a separator or pattern",
		Factory:     text.NewTextSplitStep,
	},
	TextKeepAction: {
		Key:         TextKeepAction,
		Name:        "Text Keep",
		Description: "Keeps one capture group of a regular expression match",
		Factory:     text.NewTextKeepStep,
	},
	TextPadAction: {
		Key:         TextPadAction,
		Name:        "Text Pad",
		Description: "Pads text to a specified length",
		Factory:     text.NewTextPadStep,
	},
}

var registerOnce sync.Once

// Register adds every built-in action to the registry. It is safe to call
// more than once.
func Register() {
	registerOnce.Do(func() {
		for _, action := range ActionDefinitions {
			registry.Register(action)
		}
	})
}
