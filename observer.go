package lazyfsm

import (
	"context"
	"log/slog"
)

// NoopObserver discards all observer events.
type NoopObserver[StateT comparable, SymbolT any] struct{}

func (NoopObserver[StateT, SymbolT]) OnStep(context.Context, StepEvent[StateT, SymbolT]) {}
func (NoopObserver[StateT, SymbolT]) OnTransitionError(context.Context, StateT, SymbolT, error) {
}
func (NoopObserver[StateT, SymbolT]) OnUndefinedState(context.Context, *UndefinedStateError) {}

// LogObserver writes structured logs via log/slog.
// The zero value logs through slog.Default.
type LogObserver[StateT comparable, SymbolT any] struct{ Logger *slog.Logger }

func (o LogObserver[StateT, SymbolT]) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func (o LogObserver[StateT, SymbolT]) OnStep(_ context.Context, ev StepEvent[StateT, SymbolT]) {
	o.logger().Debug("fsm step",
		"from", ev.From,
		"symbol", ev.Symbol,
		"to", ev.To,
		"width", ev.To.Len())
}

func (o LogObserver[StateT, SymbolT]) OnTransitionError(_ context.Context, state StateT, symbol SymbolT, err error) {
	o.logger().Error("fsm transition failed",
		"state", state,
		"symbol", symbol,
		"error", err)
}

func (o LogObserver[StateT, SymbolT]) OnUndefinedState(_ context.Context, err *UndefinedStateError) {
	o.logger().Error("fsm undefined state",
		"state", err.State,
		"source", err.Source,
		"symbol", err.Symbol)
}
