package mediator

import (
	"go.opentelemetry.io/otel/trace"
)

type (
	//Option mediator option
	Option interface {
		apply(*mediatorOptions)
	}

	mediatorOptions struct {
		tracerProvider trace.TracerProvider
		behaviors      []Behavior
	}

	mediatorOptionApplier func(*mediatorOptions)
)

var _ Option = (mediatorOptionApplier)(nil)

//WithTracerProvider sets tracer provider used to make spans of Send; global provider is used by default
func WithTracerProvider(tp trace.TracerProvider) Option {
	var ret mediatorOptionApplier = func(o *mediatorOptions) {
		o.tracerProvider = tp
	}
	return ret
}

//WithBehaviors appends pipeline behaviors, the first one is the outermost
func WithBehaviors(behaviors ...Behavior) Option {
	var ret mediatorOptionApplier = func(o *mediatorOptions) {
		o.behaviors = append(o.behaviors, behaviors...)
	}
	return ret
}

func (f mediatorOptionApplier) apply(o *mediatorOptions) {
	f(o)
}
