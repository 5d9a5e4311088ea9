package lazyfsm

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Config defines FSM construction-time options.
type Config[StateT comparable, SymbolT any] struct {
	Name        string
	Initial     StateT
	Universe    StateSet[StateT] // nil leaves the state space open
	Accepting   StateSet[StateT]
	Alphabet    func(SymbolT) bool // nil accepts every symbol
	Transition  Transition[StateT, SymbolT]
	Middlewares []Middleware[StateT, SymbolT]
	Observer    Observer[StateT, SymbolT]
}

// AlphabetOf builds an alphabet predicate accepting exactly the given symbols.
func AlphabetOf[SymbolT comparable](symbols ...SymbolT) func(SymbolT) bool {
	members := make(map[SymbolT]struct{}, len(symbols))
	for _, s := range symbols {
		members[s] = struct{}{}
	}
	return func(symbol SymbolT) bool {
		_, ok := members[symbol]
		return ok
	}
}

// FSM is a lazily evaluated, possibly nondeterministic finite-state machine.
// The transition rule is a function, so the state space is never materialized
// and may be far larger than memory allows. An FSM holds no execution state:
// callers thread StateSets through Step and Run, and one instance may serve
// any number of goroutines and input sequences concurrently.
type FSM[StateT comparable, SymbolT any] struct {
	name       string
	initial    StateT
	universe   StateSet[StateT]
	accepting  StateSet[StateT]
	alphabet   func(SymbolT) bool
	transition Transition[StateT, SymbolT]
	observer   Observer[StateT, SymbolT]
}

// New validates cfg and creates an immutable FSM instance.
func New[StateT comparable, SymbolT any](cfg Config[StateT, SymbolT]) (*FSM[StateT, SymbolT], error) {
	if cfg.Transition == nil {
		return nil, &ConfigError{Reason: "nil transition function"}
	}
	if cfg.Universe != nil {
		if !cfg.Universe.Contains(cfg.Initial) {
			return nil, &ConfigError{Reason: "initial state outside universe", Value: cfg.Initial}
		}
		for s := range cfg.Accepting {
			if !cfg.Universe.Contains(s) {
				return nil, &ConfigError{Reason: "accepting state outside universe", Value: s}
			}
		}
	}

	tr := cfg.Transition
	for i := len(cfg.Middlewares) - 1; i >= 0; i-- {
		tr = cfg.Middlewares[i](tr)
	}

	var universe StateSet[StateT]
	if cfg.Universe != nil {
		universe = cfg.Universe.Clone()
	}
	return &FSM[StateT, SymbolT]{
		name:       cfg.Name,
		initial:    cfg.Initial,
		universe:   universe,
		accepting:  cfg.Accepting.Clone(),
		alphabet:   cfg.Alphabet,
		transition: tr,
		observer:   cfg.Observer,
	}, nil
}

// MustNew is like New but panics on an invalid Config.
func MustNew[StateT comparable, SymbolT any](cfg Config[StateT, SymbolT]) *FSM[StateT, SymbolT] {
	f, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return f
}

// String identifies the machine and the size of its universe.
func (f *FSM[StateT, SymbolT]) String() string {
	name := f.name
	if name == "" {
		name = "unnamed"
	}
	if f.universe == nil {
		return fmt.Sprintf("FSM<%s, open universe>", name)
	}
	return fmt.Sprintf("FSM<%s, %d states>", name, f.universe.Len())
}

// Step advances every state in current by one symbol and returns the union of
// the successors as a fresh set. An empty current set stays empty, without
// error and without invoking the transition. current is never mutated.
func (f *FSM[StateT, SymbolT]) Step(ctx context.Context, current StateSet[StateT], symbol SymbolT) (StateSet[StateT], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	next := make(StateSet[StateT], len(current))
	if len(current) == 0 {
		return next, nil
	}
	if f.alphabet != nil && !f.alphabet(symbol) {
		return nil, &InvalidSymbolError{Symbol: symbol}
	}
	if f.universe != nil {
		for s := range current {
			if !f.universe.Contains(s) {
				uerr := &UndefinedStateError{State: s}
				if f.observer != nil {
					f.observer.OnUndefinedState(ctx, uerr)
				}
				return nil, uerr
			}
		}
	}

	for s := range current {
		succ, err := f.invoke(ctx, s, symbol)
		if err != nil {
			if !errors.Is(err, ErrIllegalTransition) {
				err = &TransitionError{State: s, Symbol: symbol, Cause: err}
			}
			if f.observer != nil {
				f.observer.OnTransitionError(ctx, s, symbol, err)
			}
			return nil, err
		}
		switch succ.kind {
		case successorsOne:
			if err := f.admit(ctx, next, succ.one, s, symbol); err != nil {
				return nil, err
			}
		case successorsMany:
			for _, produced := range succ.many {
				if err := f.admit(ctx, next, produced, s, symbol); err != nil {
					return nil, err
				}
			}
		default:
			terr := &TransitionError{State: s, Symbol: symbol, Cause: errInvalidSuccessors}
			if f.observer != nil {
				f.observer.OnTransitionError(ctx, s, symbol, terr)
			}
			return nil, terr
		}
	}

	if f.observer != nil {
		f.observer.OnStep(ctx, StepEvent[StateT, SymbolT]{From: current, Symbol: symbol, To: next})
	}
	return next, nil
}

// admit records one produced successor, enforcing the universe.
func (f *FSM[StateT, SymbolT]) admit(ctx context.Context, next StateSet[StateT], produced, source StateT, symbol SymbolT) error {
	if f.universe != nil && !f.universe.Contains(produced) {
		uerr := &UndefinedStateError{State: produced, Source: source, Symbol: symbol}
		if f.observer != nil {
			f.observer.OnUndefinedState(ctx, uerr)
		}
		return uerr
	}
	next[produced] = struct{}{}
	return nil
}

// invoke calls the wrapped transition, converting panics into errors.
func (f *FSM[StateT, SymbolT]) invoke(ctx context.Context, state StateT, symbol SymbolT) (succ Successors[StateT], err error) {
	defer func() {
		if r := recover(); r != nil {
			succ = Successors[StateT]{}
			err = fmt.Errorf("transition panicked: %v", r)
		}
	}()
	return f.transition(ctx, state, symbol)
}

// Run folds Step over symbols starting from initial and returns the final
// set, which is always fresh, even when symbols is empty. Evaluation stops at
// the first error; no partial result is returned.
func (f *FSM[StateT, SymbolT]) Run(ctx context.Context, initial StateSet[StateT], symbols []SymbolT) (StateSet[StateT], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	current := initial.Clone()
	for _, symbol := range symbols {
		next, err := f.Step(ctx, current, symbol)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// Process runs symbols from the machine's configured initial state.
func (f *FSM[StateT, SymbolT]) Process(ctx context.Context, symbols []SymbolT) (StateSet[StateT], error) {
	return f.Run(ctx, NewStateSet(f.initial), symbols)
}

// Accepts reports whether any state in states is accepting.
func (f *FSM[StateT, SymbolT]) Accepts(states StateSet[StateT]) bool {
	// scan the smaller side
	if len(f.accepting) < len(states) {
		for s := range f.accepting {
			if states.Contains(s) {
				return true
			}
		}
		return false
	}
	for s := range states {
		if f.accepting.Contains(s) {
			return true
		}
	}
	return false
}

// Recognize runs symbols from the initial state and additionally requires the
// final set to be accepting, returning a *RejectedError otherwise.
func (f *FSM[StateT, SymbolT]) Recognize(ctx context.Context, symbols []SymbolT) (StateSet[StateT], error) {
	final, err := f.Process(ctx, symbols)
	if err != nil {
		return nil, err
	}
	if !f.Accepts(final) {
		return nil, &RejectedError{Final: sortedMembers(final)}
	}
	return final, nil
}

// sortedMembers renders a set into a deterministic []any for error payloads.
func sortedMembers[StateT comparable](states StateSet[StateT]) []any {
	members := states.Members()
	sort.Slice(members, func(i, j int) bool {
		return fmt.Sprint(members[i]) < fmt.Sprint(members[j])
	})
	out := make([]any, len(members))
	for i, m := range members {
		out[i] = m
	}
	return out
}
