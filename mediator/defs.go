package mediator

import (
	"context"
	"reflect"
)

type (
	//Next is continuation of the chain: the rest of behaviors and eventually the handler
	Next func(ctx context.Context) (interface{}, error)

	//Behavior is a pipeline stage which wraps invocation of the rest of the chain
	Behavior interface {
		Handle(ctx context.Context, req interface{}, next Next) (interface{}, error)
	}

	//BehaviorFunc functional Behavior
	BehaviorFunc func(ctx context.Context, req interface{}, next Next) (interface{}, error)

	//Selector is optionally implemented by Behavior to join chains of accepted request types only
	Selector interface {
		Accepts(reqType reflect.Type) bool
	}

	//Handler handles requests of type Req
	Handler[Req any, Resp any] interface {
		Handle(ctx context.Context, req Req) (Resp, error)
	}

	//HandlerFunc functional Handler
	HandlerFunc[Req any, Resp any] func(ctx context.Context, req Req) (Resp, error)
)

var (
	_ Behavior                  = (BehaviorFunc)(nil)
	_ Handler[struct{}, string] = (HandlerFunc[struct{}, string])(nil)
)

//Handle impl Behavior
func (f BehaviorFunc) Handle(ctx context.Context, req interface{}, next Next) (interface{}, error) {
	return f(ctx, req, next)
}

//Handle impl Handler
func (f HandlerFunc[Req, Resp]) Handle(ctx context.Context, req Req) (Resp, error) {
	return f(ctx, req)
}

func accepts(b Behavior, reqType reflect.Type) bool {
	if s, ok := b.(Selector); ok {
		return s.Accepts(reqType)
	}
	return true
}
