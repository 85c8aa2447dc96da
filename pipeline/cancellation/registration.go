package cancellation

import (
	"github.com/pkg/errors"
	"github.com/thataway/cancellation-pipeline/mediator"
)

//AddPipeline scans candidates for finalizers and installs cancellation-aware stage into mediator
//for every cancelable request type
func AddPipeline(m *mediator.Mediator, candidates []interface{}, opts ...Option) (*Registry, error) {
	const api = "cancellation/AddPipeline"
	if m == nil {
		return nil, errors.Wrap(ErrNilMediator, api)
	}
	reg, err := NewRegistry(candidates, opts...)
	if err != nil {
		return nil, errors.Wrap(err, api)
	}
	m.Use(NewBehavior(reg, opts...))
	return reg, nil
}
