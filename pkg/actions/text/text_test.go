package text

import (
	"context"
	"regexp"
	"testing"

	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, step models.StepFunc, value any) any {
	t.Helper()
	result, err := step(context.Background(), value, nil)
	require.NoError(t, err)
	return result
}

func TestTrim(t *testing.T) {
	type testCase struct {
		name     string
		step     models.StepFunc
		input    any
		expected any
	}

	testCases := []testCase{
		{name: "trim", step: Trim(), input: " \t a b \n", expected: "a b"},
		{name: "trim nbsp and bom", step: Trim(), input: "\u00a0x\ufeff", expected: "x"},
		{name: "trim left", step: TrimLeft(), input: "  a  ", expected: "a  "},
		{name: "trim right", step: TrimRight(), input: "  a  ", expected: "  a"},
		{name: "trim number", step: Trim(), input: 5, expected: models.Empty},
		{name: "trim nil", step: Trim(), input: nil, expected: models.Empty},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, run(t, testCase.step, testCase.input))
		})
	}

	t.Run("should be idempotent", func(t *testing.T) {
		once := run(t, Trim(), "  x  ")
		assert.Equal(t, once, run(t, Trim(), once))
	})

	t.Run("should trim custom chars from the registry", func(t *testing.T) {
		step, err := NewTextTrimStep("text_trim", map[string]any{"chars": "-", "side": "left"})
		require.NoError(t, err)
		assert.Equal(t, "a--", run(t, step, "--a--"))
	})

	t.Run("should reject unknown sides", func(t *testing.T) {
		_, err := NewTextTrimStep("text_trim", map[string]any{"side": "middle"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "action 'text_trim'")
	})
}

func TestCase(t *testing.T) {
	assert.Equal(t, "ABC", run(t, ToUpper(), "aBc"))
	assert.Equal(t, "abc", run(t, ToLower(), "aBc"))
	assert.Equal(t, models.Empty, run(t, ToUpper(), []any{"a"}))
	assert.Equal(t, "ABC", run(t, ToUpper(), run(t, ToUpper(), "abc")))
}

func TestReplace(t *testing.T) {
	assert.Equal(t, "b-a", run(t, Replace("a", "b"), "a-a"))
	assert.Equal(t, "b-b", run(t, ReplaceAll("a", "b"), "a-a"))
	assert.Equal(t, "x1-x2", run(t, ReplaceRegex(regexp.MustCompile(`a(\d)`), "x$1"), "a1-a2"))
	assert.Equal(t, models.Empty, run(t, Replace("a", "b"), true))

	t.Run("should build from arguments", func(t *testing.T) {
		step, err := NewTextReplaceStep("text_replace", map[string]any{"target": "a", "replacement": "", "all": true})
		require.NoError(t, err)
		assert.Equal(t, "bc", run(t, step, "abac"))
	})

	t.Run("should reject invalid patterns", func(t *testing.T) {
		_, err := NewTextRegexReplaceStep("text_regex_replace", map[string]any{"pattern": "("})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid pattern")
	})
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []any{"a", "b", "c"}, run(t, Split(","), "a,b,c"))
	assert.Equal(t, []any{"a", "b"}, run(t, Split(""), "ab"))
	assert.Equal(t, []any{""}, run(t, Split(","), ""))
	assert.Equal(t, []any{"a", "b"}, run(t, SplitRegex(regexp.MustCompile(`\s*;\s*`)), "a ; b"))
	assert.Equal(t, models.Empty, run(t, Split(","), nil))

	step, err := NewTextSplitStep("text_split", map[string]any{"pattern": `\d`})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, run(t, step, "a1b"))
}

func TestKeep(t *testing.T) {
	re := regexp.MustCompile(`(?P<user>\w+)@(?P<domain>[\w.]+)`)

	assert.Equal(t, "bob", run(t, Keep(re, 0), "mail bob@example.com"))
	assert.Equal(t, "example.com", run(t, Keep(re, 1), "mail bob@example.com"))
	assert.Equal(t, models.Empty, run(t, Keep(re, 5), "bob@example.com"))
	assert.Equal(t, models.Empty, run(t, Keep(re, 0), "no match"))
	assert.Equal(t, "example.com", run(t, KeepNamed(re, "domain"), "bob@example.com"))
	assert.Equal(t, models.Empty, run(t, KeepNamed(re, "missing"), "bob@example.com"))
	assert.Equal(t, models.Empty, run(t, Keep(regexp.MustCompile(`a(b)?`), 0), "a"))

	t.Run("should require a group or name", func(t *testing.T) {
		_, err := NewTextKeepStep("text_keep", map[string]any{"pattern": "a"})
		assert.Error(t, err)
		assert.Equal(t, "action 'text_keep': either group or name is required", err.Error())
	})

	t.Run("should accept group zero", func(t *testing.T) {
		step, err := NewTextKeepStep("text_keep", map[string]any{"pattern": `(\d+)`, "group": 0})
		require.NoError(t, err)
		assert.Equal(t, "42", run(t, step, "id 42"))
	})
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab  ", run(t, Pad(4, "", ""), "ab"))
	assert.Equal(t, "00ab", run(t, Pad(4, "0", SideLeft), "ab"))
	assert.Equal(t, "*ab**", run(t, Pad(5, "*", SideBoth), "ab"))
	assert.Equal(t, "abcdef", run(t, Pad(3, "", ""), "abcdef"))
	assert.Equal(t, models.Empty, run(t, Pad(3, "", ""), 1))

	_, err := NewTextPadStep("text_pad", map[string]any{})
	assert.Error(t, err)
}
