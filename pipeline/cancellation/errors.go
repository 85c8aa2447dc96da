package cancellation

import (
	"github.com/pkg/errors"
)

var (
	//ErrNilFinalizer nil is given as a finalizer candidate
	ErrNilFinalizer = errors.New("finalizer is nil")

	//ErrNotAFinalizer candidate has no `Finalize(context.Context, Req) (R, error)` method
	ErrNotAFinalizer = errors.New("not a finalizer")

	//ErrNotCancelable finalizer request type has no `Response() R` method matching finalizer response type
	ErrNotCancelable = errors.New("request is not cancelable")

	//ErrDuplicateFinalizer more than one finalizer is given for the same request type
	ErrDuplicateFinalizer = errors.New("duplicate finalizer")

	//ErrNilMediator mediator is not given to AddPipeline
	ErrNilMediator = errors.New("mediator is nil")
)
