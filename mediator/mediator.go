package mediator

import (
	"context"
	"reflect"
	"sync"

	"github.com/pkg/errors"
	"github.com/thataway/cancellation-pipeline/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//TracerName instrumentation name of mediator spans
const TracerName = "github.com/thataway/cancellation-pipeline/mediator"

//AttrRequestType span attribute with request type name
const AttrRequestType = attribute.Key("mediator.request_type")

type (
	//Mediator routes requests to their handlers through ordered chain of behaviors
	Mediator struct {
		mx        sync.RWMutex
		routes    map[reflect.Type]*route
		behaviors []Behavior
		tracer    trace.Tracer
	}

	route struct {
		handle func(ctx context.Context, req interface{}) (interface{}, error)
	}
)

//New makes Mediator
func New(opts ...Option) *Mediator {
	var options mediatorOptions
	for _, o := range opts {
		o.apply(&options)
	}
	tp := options.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Mediator{
		routes:    make(map[reflect.Type]*route),
		behaviors: options.behaviors,
		tracer:    tp.Tracer(TracerName),
	}
}

//Register registers handler of Req requests, Req is expected to be a concrete type
func Register[Req any, Resp any](m *Mediator, h Handler[Req, Resp]) error {
	const api = "mediator/Register"
	reqType := reflect.TypeOf((*Req)(nil)).Elem()
	m.mx.Lock()
	defer m.mx.Unlock()
	if _, has := m.routes[reqType]; has {
		return errors.Wrapf(ErrHandlerAlreadyRegistered, "%s: '%v'", api, reqType)
	}
	m.routes[reqType] = &route{
		handle: func(ctx context.Context, req interface{}) (interface{}, error) {
			return h.Handle(ctx, req.(Req))
		},
	}
	return nil
}

//MustRegister registers handler or panics
func MustRegister[Req any, Resp any](m *Mediator, h Handler[Req, Resp]) {
	if err := Register[Req, Resp](m, h); err != nil {
		panic(err)
	}
}

//Use appends behaviors to the end of the chain
func (m *Mediator) Use(behaviors ...Behavior) {
	m.mx.Lock()
	defer m.mx.Unlock()
	m.behaviors = append(m.behaviors, behaviors...)
}

//Handles checks if mediator has handler for request type
func (m *Mediator) Handles(reqType reflect.Type) bool {
	m.mx.RLock()
	defer m.mx.RUnlock()
	_, ok := m.routes[reqType]
	return ok
}

//Send sends request through the chain of behaviors to its handler
func (m *Mediator) Send(ctx context.Context, req interface{}) (resp interface{}, err error) {
	const api = "mediator/Send"
	if req == nil {
		return nil, errors.Wrap(ErrNilRequest, api)
	}
	reqType := reflect.TypeOf(req)
	m.mx.RLock()
	r := m.routes[reqType]
	var chain []Behavior
	if r != nil {
		chain = make([]Behavior, 0, len(m.behaviors))
		for _, b := range m.behaviors {
			if accepts(b, reqType) {
				chain = append(chain, b)
			}
		}
	}
	m.mx.RUnlock()
	if r == nil {
		return nil, errors.Wrapf(ErrHandlerNotFound, "%s: '%v'", api, reqType)
	}

	var span trace.Span
	ctx, span = m.tracer.Start(ctx, "mediator.Send",
		trace.WithAttributes(AttrRequestType.String(reqType.String())))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	ctx = logger.WithFields(ctx, "request", reqType.String())

	next := Next(func(ctx context.Context) (interface{}, error) {
		return r.handle(ctx, req)
	})
	for i := len(chain) - 1; i >= 0; i-- {
		b, inner := chain[i], next
		next = func(ctx context.Context) (interface{}, error) {
			return b.Handle(ctx, req, inner)
		}
	}
	return next(ctx)
}

//SendAs sends request and casts response to Resp
func SendAs[Resp any](ctx context.Context, m *Mediator, req interface{}) (Resp, error) {
	const api = "mediator/SendAs"
	var ret Resp
	resp, err := m.Send(ctx, req)
	if err != nil || resp == nil {
		return ret, err
	}
	var ok bool
	if ret, ok = resp.(Resp); !ok {
		return ret, errors.Wrapf(ErrUnexpectedResponse, "%s: got '%T', want '%v'",
			api, resp, reflect.TypeOf((*Resp)(nil)).Elem())
	}
	return ret, nil
}
