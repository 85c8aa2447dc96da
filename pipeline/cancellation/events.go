package cancellation

import (
	"context"
	"reflect"
	"time"
)

//Outcome terminal state of stage invocation
type Outcome int8

const (
	//OutcomeCompleted handler completed normally
	OutcomeCompleted Outcome = iota + 1
	//OutcomeFinalized self-correlated cancellation is converted into finalized response
	OutcomeFinalized
	//OutcomeFinalizerFailed finalizer returned an error
	OutcomeFinalizerFailed
	//OutcomePropagated failure or uncorrelated cancellation is propagated unchanged
	OutcomePropagated
)

//String impl fmt.Stringer
func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeFinalized:
		return "finalized"
	case OutcomeFinalizerFailed:
		return "finalizer_failed"
	case OutcomePropagated:
		return "propagated"
	}
	return "unknown"
}

//Event outcome of stage invocation
type Event struct {
	Ctx         context.Context
	RequestType reflect.Type
	Outcome     Outcome
	//Finalizer kind of finalizer, set when finalizer is invoked
	Finalizer FinalizerKind
	Err       error
	//FinalizeDuration time spent in finalizer
	FinalizeDuration time.Duration
}
