package cancellation

import (
	"github.com/thataway/cancellation-pipeline/pkg/patterns/observer"
)

type (
	//Option option of registry and pipeline stage
	Option interface {
		apply(*options)
	}

	//EventObserver receives outcome of every stage invocation
	EventObserver func(Event)

	options struct {
		lastRegisteredWins bool
		noSpanEvents       bool
		observers          []EventObserver
	}

	optionApplier func(*options)
)

var _ Option = (optionApplier)(nil)

//WithLastRegisteredWins the last of duplicate finalizers of request type shadows previous ones
func WithLastRegisteredWins() Option {
	var ret optionApplier = func(o *options) {
		o.lastRegisteredWins = true
	}
	return ret
}

//WithObservers adds stage outcome observers
func WithObservers(obs ...EventObserver) Option {
	var ret optionApplier = func(o *options) {
		o.observers = append(o.observers, obs...)
	}
	return ret
}

//WithSpanEvents enables/disables span events on finalization, enabled by default
func WithSpanEvents(enabled bool) Option {
	var ret optionApplier = func(o *options) {
		o.noSpanEvents = !enabled
	}
	return ret
}

func (f optionApplier) apply(o *options) {
	f(o)
}

func makeOptions(opts ...Option) options {
	var ret options
	for _, o := range opts {
		if o != nil {
			o.apply(&ret)
		}
	}
	return ret
}

func makeSubject(observers []EventObserver) observer.Subject[Event] {
	if len(observers) == 0 {
		return nil
	}
	subj := observer.NewSubject[Event]()
	for _, obs := range observers {
		if obs == nil {
			continue
		}
		subj.ObserversAttach(observer.NewObserver(observer.EventReceiver[Event](obs), false))
	}
	return subj
}
