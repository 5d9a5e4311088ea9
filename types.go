package lazyfsm

import (
	"context"
)

// Transition computes the successor states reachable from state on symbol.
// The engine calls it on demand and never enumerates the state space up front,
// so the function may range over domains far too large to tabulate.
// Return One for a deterministic hop, Many to fork into several branches, and
// None for a legal dead end. Errors wrapping ErrIllegalTransition reach the
// caller unchanged; any other failure is reported as a *TransitionError.
type Transition[StateT comparable, SymbolT any] func(ctx context.Context, state StateT, symbol SymbolT) (Successors[StateT], error)

// Middleware wraps a Transition (e.g. tracing/logging).
// Middlewares run in declaration order, the first being outermost.
type Middleware[StateT comparable, SymbolT any] func(next Transition[StateT, SymbolT]) Transition[StateT, SymbolT]

type successorsKind uint8

const (
	successorsInvalid successorsKind = iota
	successorsOne
	successorsMany
)

// Successors is the result of a Transition call: exactly one successor state,
// or an explicit (possibly empty) list of them. The zero value is deliberately
// invalid so a forgotten return surfaces as a *TransitionError instead of
// silently killing the branch; always build values with One, Many, or None.
type Successors[StateT comparable] struct {
	kind successorsKind
	one  StateT
	many []StateT
}

// One reports a single successor state.
func One[StateT comparable](state StateT) Successors[StateT] {
	return Successors[StateT]{kind: successorsOne, one: state}
}

// Many reports a set of successor states, forking evaluation into one branch
// per state. Duplicates are collapsed by the engine.
func Many[StateT comparable](states ...StateT) Successors[StateT] {
	return Successors[StateT]{kind: successorsMany, many: states}
}

// None reports a legal dead end: the branch stops here and no error is raised.
func None[StateT comparable]() Successors[StateT] {
	return Successors[StateT]{kind: successorsMany}
}

// Len returns the number of successor states.
func (s Successors[StateT]) Len() int {
	if s.kind == successorsOne {
		return 1
	}
	return len(s.many)
}

// States returns the successor states as a fresh slice.
func (s Successors[StateT]) States() []StateT {
	switch s.kind {
	case successorsOne:
		return []StateT{s.one}
	case successorsMany:
		out := make([]StateT, len(s.many))
		copy(out, s.many)
		return out
	default:
		return nil
	}
}

// StepEvent describes one completed evaluation step.
// Hooks must treat the state sets as read-only.
type StepEvent[StateT comparable, SymbolT any] struct {
	From   StateSet[StateT]
	Symbol SymbolT
	To     StateSet[StateT]
}

// Observer exposes hooks for telemetry/logging. Hooks run synchronously on
// the evaluating goroutine.
type Observer[StateT comparable, SymbolT any] interface {
	OnStep(ctx context.Context, ev StepEvent[StateT, SymbolT])
	OnTransitionError(ctx context.Context, state StateT, symbol SymbolT, err error)
	// OnUndefinedState fires when a state outside the declared universe is
	// held or produced.
	OnUndefinedState(ctx context.Context, err *UndefinedStateError)
}
