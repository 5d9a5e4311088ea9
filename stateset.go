package lazyfsm

import (
	"fmt"
	"sort"
	"strings"
)

// StateSet is the working set of active states during evaluation. A set with
// more than one member is a machine in superposition; an empty set is a dead
// machine. Operations on FSM return fresh sets and never mutate their inputs.
type StateSet[StateT comparable] map[StateT]struct{}

// NewStateSet builds a set from the given members.
func NewStateSet[StateT comparable](members ...StateT) StateSet[StateT] {
	s := make(StateSet[StateT], len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// Contains reports whether member is in the set.
func (s StateSet[StateT]) Contains(member StateT) bool {
	_, ok := s[member]
	return ok
}

// Len returns the number of states in the set.
func (s StateSet[StateT]) Len() int { return len(s) }

// IsEmpty reports whether the set holds no states.
func (s StateSet[StateT]) IsEmpty() bool { return len(s) == 0 }

// Equal reports whether both sets hold exactly the same states.
func (s StateSet[StateT]) Equal(other StateSet[StateT]) bool {
	if len(s) != len(other) {
		return false
	}
	for m := range s {
		if _, ok := other[m]; !ok {
			return false
		}
	}
	return true
}

// Members returns the states as a fresh slice in unspecified order.
func (s StateSet[StateT]) Members() []StateT {
	out := make([]StateT, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	return out
}

// Clone returns a fresh copy of the set. Cloning a nil set yields an empty,
// non-nil set.
func (s StateSet[StateT]) Clone() StateSet[StateT] {
	out := make(StateSet[StateT], len(s))
	for m := range s {
		out[m] = struct{}{}
	}
	return out
}

// String renders the set as "{a b}" with members ordered by their printed
// form, so the output is stable across runs.
func (s StateSet[StateT]) String() string {
	labels := make([]string, 0, len(s))
	for m := range s {
		labels = append(labels, fmt.Sprint(m))
	}
	sort.Strings(labels)
	return "{" + strings.Join(labels, " ") + "}"
}
