package pipeline

import "time"

// Outcome is how a single invocation of a compiled chain ended.
type Outcome string

const (
	OutcomeTransformed Outcome = "transformed"
	OutcomeGateClosed  Outcome = "gate_closed"
	OutcomeFailed      Outcome = "failed"
)

// Observer receives a callback for every invocation of a compiled chain.
// Implementations must be safe for concurrent use.
type Observer interface {
	// GateClosed is called when condition index stopped the chain. err is
	// set when the condition failed rather than returned false.
	GateClosed(chain string, index int, err error)
	StepFailed(chain, step string, err error)
	Completed(chain string, outcome Outcome, duration time.Duration)
}
