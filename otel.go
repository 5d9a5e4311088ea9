package lazyfsm

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	otelAttrFSMName      = "fsm.name"
	otelAttrState        = "fsm.state"
	otelAttrSymbol       = "fsm.symbol"
	otelAttrSymbolType   = "fsm.symbol.type"
	otelAttrSuccessors   = "fsm.successors"
	otelSpanNameTemplate = "%s %v --%v-->"
)

// WithOTelTransitionSpans wraps every transition call in an OpenTelemetry span.
// Attributes adicionadas:
//   - fsm.name, fsm.state, fsm.symbol, fsm.symbol.type
//   - fsm.successors (quantos estados a transição produziu)
//
// O span é finalizado com status codes.Ok ou codes.Error, registrando o erro devolvido pela transição.
func WithOTelTransitionSpans[StateT comparable, SymbolT any](tr trace.Tracer, machine string) Middleware[StateT, SymbolT] {
	if tr == nil {
		tr = otel.Tracer("lazyfsm")
	}
	return func(next Transition[StateT, SymbolT]) Transition[StateT, SymbolT] {
		return func(ctx context.Context, state StateT, symbol SymbolT) (Successors[StateT], error) {
			spanName := fmt.Sprintf(otelSpanNameTemplate, machine, state, symbol)
			ctx, span := tr.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindInternal))

			span.SetAttributes(
				attribute.String(otelAttrFSMName, machine),
				attribute.String(otelAttrState, fmt.Sprint(state)),
				attribute.String(otelAttrSymbol, fmt.Sprint(symbol)),
				attribute.String(otelAttrSymbolType, fmt.Sprintf("%T", symbol)),
			)

			succ, err := next(ctx, state, symbol)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetAttributes(attribute.Int(otelAttrSuccessors, succ.Len()))
				span.SetStatus(codes.Ok, "")
			}
			span.End()
			return succ, err
		}
	}
}
