package errors

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Gobusters/ectoerror/httperror"
)

// PipelineError locates a failure inside a chain: which chain, which step,
// which action, and for children transforms which field and item.
type PipelineError struct {
	Chain     string
	Step      string
	Action    string
	Field     string
	itemIndex *int
	Message   string
	cause     error
}

func NewPipelineError(msg string) *PipelineError {
	return &PipelineError{
		Message: msg,
	}
}

// NewPipelineErrorf creates a new PipelineError with a formatted message.
// A %w verb keeps the wrapped error reachable through Unwrap.
func NewPipelineErrorf(format string, args ...any) *PipelineError {
	wrapped := fmt.Errorf(format, args...)

	pipelineError := &PipelineError{
		Message: wrapped.Error(),
	}

	if strings.Contains(format, "%w") {
		for _, arg := range args {
			if err, ok := arg.(error); ok {
				pipelineError.cause = err
				break
			}
		}
	}

	return pipelineError
}

func WrapPipelineError(e error) *PipelineError {
	if e == nil {
		return nil
	}

	if pipelineError, ok := e.(*PipelineError); ok {
		return pipelineError
	}

	return &PipelineError{
		Message: e.Error(),
		cause:   e,
	}
}

func (e *PipelineError) Error() string {
	path := []string{}
	if e.Chain != "" {
		path = append(path, fmt.Sprintf("chain '%s'", e.Chain))
	}
	if e.Step != "" {
		path = append(path, fmt.Sprintf("step '%s'", e.Step))
	}
	if e.Field != "" {
		path = append(path, fmt.Sprintf("field '%s'", e.Field))
	}
	if e.itemIndex != nil {
		path = append(path, fmt.Sprintf("item %d", *e.itemIndex))
	}
	if e.Action != "" {
		path = append(path, fmt.Sprintf("action '%s'", e.Action))
	}

	if len(path) == 0 {
		return e.Message
	}

	return strings.Join(path, " -> ") + ": " + e.Message
}

func (e *PipelineError) Unwrap() error {
	return e.cause
}

// AddChain only sets the chain name once so the innermost chain wins.
func (e *PipelineError) AddChain(name string) *PipelineError {
	if e.Chain == "" {
		e.Chain = name
	}
	return e
}

// AddStep only sets the step once so the innermost step wins.
func (e *PipelineError) AddStep(stepID string) *PipelineError {
	if e.Step == "" {
		e.Step = stepID
	}
	return e
}

func (e *PipelineError) AddField(field string) *PipelineError {
	if e.Field == "" {
		e.Field = field
	}
	return e
}

func (e *PipelineError) AddAction(actionKey string) *PipelineError {
	e.Action = actionKey
	return e
}

func (e *PipelineError) AddItemIndex(itemIndex int) *PipelineError {
	if e.itemIndex == nil {
		e.itemIndex = &itemIndex
	}
	return e
}

// ItemIndex returns the array index the error occurred at, if any.
func (e *PipelineError) ItemIndex() (int, bool) {
	if e.itemIndex == nil {
		return 0, false
	}
	return *e.itemIndex, true
}

func (e *PipelineError) ToHTTPError() *httperror.HTTPError {
	herr := httperror.NewHTTPError(http.StatusBadRequest, e.Error()).
		AddMetaValue("chain", e.Chain).
		AddMetaValue("step", e.Step).
		AddMetaValue("field", e.Field).
		AddMetaValue("action_key", e.Action)

	if e.itemIndex != nil {
		herr = herr.AddMetaValue("item_index", strconv.Itoa(*e.itemIndex))
	}

	return herr
}

func IsPipelineError(err error) bool {
	_, ok := err.(*PipelineError)
	return ok
}
