package cancellation

import (
	"context"
)

type (
	//Finalizer makes final response of canceled request from its partial response
	Finalizer[Req CancelableRequest[R], R any] interface {
		Finalize(ctx context.Context, req Req) (R, error)
	}

	//VoidFinalizer finalizer of requests with Unit response
	VoidFinalizer[Req CancelableRequest[Unit]] interface {
		Finalizer[Req, Unit]
	}

	//FinalizerFunc functional Finalizer
	FinalizerFunc[Req CancelableRequest[R], R any] func(ctx context.Context, req Req) (R, error)

	//PassThrough default finalizer, returns response exactly as handler left it
	PassThrough[Req CancelableRequest[R], R any] struct{}
)

var (
	_ Finalizer[VoidRequest, Unit] = (FinalizerFunc[VoidRequest, Unit])(nil)
	_ Finalizer[VoidRequest, Unit] = PassThrough[VoidRequest, Unit]{}
)

//Finalize impl Finalizer
func (f FinalizerFunc[Req, R]) Finalize(ctx context.Context, req Req) (R, error) {
	return f(ctx, req)
}

//Finalize returns req.Response() unmodified
func (PassThrough[Req, R]) Finalize(_ context.Context, req Req) (R, error) {
	return req.Response(), nil
}
