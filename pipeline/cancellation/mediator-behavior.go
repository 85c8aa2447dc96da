package cancellation

import (
	"context"
	"reflect"

	"github.com/thataway/cancellation-pipeline/mediator"
)

//Behavior cancellation-aware stage of mediator chains; it joins chains of cancelable request types only
type Behavior struct {
	core
	registry *Registry
}

var (
	_ mediator.Behavior = (*Behavior)(nil)
	_ mediator.Selector = (*Behavior)(nil)
)

//NewBehavior makes mediator behavior which finalizes requests using registry
func NewBehavior(reg *Registry, opts ...Option) *Behavior {
	return &Behavior{
		core:     makeCore(opts...),
		registry: reg,
	}
}

//Accepts impl mediator.Selector
func (b *Behavior) Accepts(reqType reflect.Type) bool {
	return IsCancelableType(reqType)
}

//Handle impl mediator.Behavior
func (b *Behavior) Handle(ctx context.Context, req interface{}, next mediator.Next) (interface{}, error) {
	reqType := reflect.TypeOf(req)
	scoped := WithScope(ctx)
	resp, err := next(scoped)
	if !b.intercepts(ctx, scoped, reqType, err) {
		return resp, err
	}
	return finalize(ctx, &b.core, reqType, b.registry.Kind(reqType), err,
		func(ctx context.Context) (interface{}, error) {
			return b.registry.finalizeAny(ctx, req)
		})
}
