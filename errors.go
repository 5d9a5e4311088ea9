package lazyfsm

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition marks a (state, symbol) pair the transition function
// refuses to evaluate. Errors wrapping it pass through Step unchanged instead
// of being reported as transition misbehavior, so table-driven machines can
// distinguish "no such edge" from a broken rule.
var ErrIllegalTransition = errors.New("lazyfsm: illegal transition")

// errInvalidSuccessors is the cause recorded when a transition returns the
// zero Successors value.
var errInvalidSuccessors = errors.New("successors value not built with One, Many, or None")

// ConfigError reports an invalid Config handed to New.
type ConfigError struct {
	Reason string
	Value  any // offending value, when one exists
}

func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("lazyfsm: invalid config: %s: %v", e.Reason, e.Value)
	}
	return "lazyfsm: invalid config: " + e.Reason
}

// TransitionError reports a misbehaving transition function: it returned an
// unexpected error, panicked, or returned the zero Successors value. Cause
// carries the underlying failure and is reachable through errors.Unwrap.
type TransitionError struct {
	State  any
	Symbol any
	Cause  error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("lazyfsm: transition misbehaved at state %v on symbol %v: %v", e.State, e.Symbol, e.Cause)
}

func (e *TransitionError) Unwrap() error { return e.Cause }

// UndefinedStateError reports a state outside the declared universe. Source
// and Symbol identify the transition that produced the state; both are nil
// when the offending state was already held before the step ran.
type UndefinedStateError struct {
	State  any
	Source any
	Symbol any
}

func (e *UndefinedStateError) Error() string {
	if e.Source == nil && e.Symbol == nil {
		return fmt.Sprintf("lazyfsm: state %v is outside the declared universe", e.State)
	}
	return fmt.Sprintf("lazyfsm: transition at state %v on symbol %v produced state %v outside the declared universe", e.Source, e.Symbol, e.State)
}

// InvalidSymbolError reports an input symbol rejected by the configured
// alphabet predicate.
type InvalidSymbolError struct {
	Symbol any
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("lazyfsm: symbol %v is outside the declared alphabet", e.Symbol)
}

// RejectedError reports input that ran to completion without reaching an
// accepting state. Final holds the terminal states ordered by printed form.
type RejectedError struct {
	Final []any
}

func (e *RejectedError) Error() string {
	if len(e.Final) == 0 {
		return "lazyfsm: input rejected: no states remain"
	}
	return fmt.Sprintf("lazyfsm: input rejected: none of the final states %v is accepting", e.Final)
}
