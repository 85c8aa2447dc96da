package cancellation

import (
	"context"
	"reflect"
	"time"

	"github.com/thataway/cancellation-pipeline/logger"
	"github.com/thataway/cancellation-pipeline/pkg/patterns/observer"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	//SpanEventFinalized span event added when finalizer is invoked
	SpanEventFinalized = "cancellation.finalized"

	//AttrRequestType span event attribute with request type name
	AttrRequestType = attribute.Key("cancellation.request_type")

	//AttrFinalizer span event attribute with finalizer kind
	AttrFinalizer = attribute.Key("cancellation.finalizer")
)

type (
	//Next continuation of the chain, eventually the handler
	Next[R any] func(ctx context.Context) (R, error)

	//Stage cancellation-aware pipeline stage of Req requests
	Stage[Req CancelableRequest[R], R any] struct {
		core
		finalizer Finalizer[Req, R]
		kind      FinalizerKind
	}

	core struct {
		subject    observer.Subject[Event]
		spanEvents bool
	}
)

//NewStage makes stage with finalizer resolved from registry
func NewStage[Req CancelableRequest[R], R any](reg *Registry, opts ...Option) *Stage[Req, R] {
	return &Stage[Req, R]{
		core:      makeCore(opts...),
		finalizer: Resolve[Req, R](reg),
		kind:      reg.Kind(typeOf[Req]()),
	}
}

//FinalizerKind kind of finalizer the stage uses
func (s *Stage[Req, R]) FinalizerKind() FinalizerKind {
	return s.kind
}

//Execute calls next once; if next fails with cancellation of ctx itself finalizer result is returned instead
func (s *Stage[Req, R]) Execute(ctx context.Context, req Req, next Next[R]) (R, error) {
	reqType := typeOf[Req]()
	scoped := WithScope(ctx)
	resp, err := next(scoped)
	if !s.intercepts(ctx, scoped, reqType, err) {
		return resp, err
	}
	return finalize(ctx, &s.core, reqType, s.kind, err, func(ctx context.Context) (R, error) {
		return s.finalizer.Finalize(ctx, req)
	})
}

func makeCore(opts ...Option) core {
	o := makeOptions(opts...)
	return core{
		subject:    makeSubject(o.observers),
		spanEvents: !o.noSpanEvents,
	}
}

//intercepts reports completed and propagated outcomes, true is returned when finalizer has to run;
//scoped is the context given to next
func (c *core) intercepts(ctx, scoped context.Context, reqType reflect.Type, err error) bool {
	if err == nil {
		c.notify(Event{Ctx: ctx, RequestType: reqType, Outcome: OutcomeCompleted})
		return false
	}
	if !IsSelfCancellation(scoped, err) {
		if IsCancellationKind(err) {
			logger.Named(ctx, "cancellation").Warnw("uncorrelated cancellation is propagated",
				"request_type", reqType.String(),
				"cause", err.Error(),
			)
		}
		c.notify(Event{Ctx: ctx, RequestType: reqType, Outcome: OutcomePropagated, Err: err})
		return false
	}
	return true
}

func (c *core) notify(ev Event) {
	if c.subject != nil {
		c.subject.Notify(ev)
	}
}

func finalize[R any](ctx context.Context, c *core, reqType reflect.Type, kind FinalizerKind,
	cancellationErr error, f func(context.Context) (R, error)) (R, error) {

	log := logger.Named(ctx, "cancellation")
	if c.spanEvents {
		trace.SpanFromContext(ctx).AddEvent(SpanEventFinalized, trace.WithAttributes(
			AttrRequestType.String(reqType.String()),
			AttrFinalizer.String(kind.String()),
		))
	}
	log.Debugw("request is canceled, finalizing",
		"request_type", reqType.String(),
		"finalizer", kind.String(),
		"cause", cancellationErr.Error(),
	)
	timePoint := time.Now()
	resp, err := f(context.WithoutCancel(ctx))
	ev := Event{
		Ctx:              ctx,
		RequestType:      reqType,
		Outcome:          OutcomeFinalized,
		Finalizer:        kind,
		FinalizeDuration: time.Since(timePoint),
	}
	if err != nil {
		log.Errorw("finalizer failed",
			"request_type", reqType.String(),
			"finalizer", kind.String(),
			"cause", err.Error(),
		)
		ev.Outcome, ev.Err = OutcomeFinalizerFailed, err
	}
	c.notify(ev)
	return resp, err
}
