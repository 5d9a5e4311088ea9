package lazyfsm

import (
	"context"
	"fmt"
)

// Table is a fluent builder for machines whose transitions are few enough to
// enumerate. Compile turns it into a Transition, so table-driven machines run
// on the same engine as lazy ones. Pairs without an entry fail with an error
// wrapping ErrIllegalTransition; declare explicit dead ends with Dead.
// A Table is not safe for concurrent use.
type Table[StateT, SymbolT comparable] struct {
	entries map[tableKey[StateT, SymbolT]]Successors[StateT]
}

type tableKey[StateT, SymbolT comparable] struct {
	state  StateT
	symbol SymbolT
}

// rowBuilder is used for fluent per-state configuration.
type rowBuilder[StateT, SymbolT comparable] struct {
	parent *Table[StateT, SymbolT]
	state  StateT
}

// entryBuilder captures the (state, symbol) pair being configured.
type entryBuilder[StateT, SymbolT comparable] struct {
	parent *Table[StateT, SymbolT]
	key    tableKey[StateT, SymbolT]
}

// NewTable creates an empty transition table.
func NewTable[StateT, SymbolT comparable]() *Table[StateT, SymbolT] {
	return &Table[StateT, SymbolT]{
		entries: make(map[tableKey[StateT, SymbolT]]Successors[StateT]),
	}
}

// From returns a builder for defining transitions out of the given state.
func (t *Table[StateT, SymbolT]) From(state StateT) *rowBuilder[StateT, SymbolT] {
	return &rowBuilder[StateT, SymbolT]{parent: t, state: state}
}

// On begins a new entry for (state, symbol).
// Defining the same pair twice overwrites the earlier entry.
func (r *rowBuilder[StateT, SymbolT]) On(symbol SymbolT) *entryBuilder[StateT, SymbolT] {
	return &entryBuilder[StateT, SymbolT]{
		parent: r.parent,
		key:    tableKey[StateT, SymbolT]{state: r.state, symbol: symbol},
	}
}

// To sets a single destination state for the entry.
func (e *entryBuilder[StateT, SymbolT]) To(state StateT) *Table[StateT, SymbolT] {
	e.parent.entries[e.key] = One(state)
	return e.parent
}

// ToAny sets several destination states, making the entry nondeterministic.
func (e *entryBuilder[StateT, SymbolT]) ToAny(states ...StateT) *Table[StateT, SymbolT] {
	e.parent.entries[e.key] = Many(states...)
	return e.parent
}

// Dead marks the entry as a legal dead end.
func (e *entryBuilder[StateT, SymbolT]) Dead() *Table[StateT, SymbolT] {
	e.parent.entries[e.key] = None[StateT]()
	return e.parent
}

// Len returns the number of entries in the table.
func (t *Table[StateT, SymbolT]) Len() int { return len(t.entries) }

// Compile snapshots the table into a Transition. Edits made to the table
// afterwards do not affect machines built from the snapshot.
func (t *Table[StateT, SymbolT]) Compile() Transition[StateT, SymbolT] {
	entries := make(map[tableKey[StateT, SymbolT]]Successors[StateT], len(t.entries))
	for k, v := range t.entries {
		entries[k] = v
	}
	return func(_ context.Context, state StateT, symbol SymbolT) (Successors[StateT], error) {
		succ, ok := entries[tableKey[StateT, SymbolT]{state: state, symbol: symbol}]
		if !ok {
			return Successors[StateT]{}, fmt.Errorf("%w: state=%v symbol=%v", ErrIllegalTransition, state, symbol)
		}
		return succ, nil
	}
}
