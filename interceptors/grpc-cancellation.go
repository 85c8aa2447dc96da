package interceptors

import (
	"context"
	"reflect"

	"github.com/thataway/cancellation-pipeline/logger"
	"github.com/thataway/cancellation-pipeline/pipeline/cancellation"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

//Cancellation unary server interceptor which finalizes cancelable requests canceled by their callers
type Cancellation struct {
	behavior *cancellation.Behavior
}

//NewCancellation makes interceptor with finalizers taken from registry
func NewCancellation(reg *cancellation.Registry, opts ...cancellation.Option) *Cancellation {
	return &Cancellation{
		behavior: cancellation.NewBehavior(reg, opts...),
	}
}

var _ UnaryInterceptor = (*Cancellation)(nil).Unary

//Unary impl grpc.UnaryServerInterceptor
func (impl *Cancellation) Unary(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if req == nil || !impl.behavior.Accepts(reflect.TypeOf(req)) {
		return handler(ctx, req)
	}
	ctx = logger.WithFields(ctx, "grpc_method", info.FullMethod)
	resp, err := impl.behavior.Handle(ctx, req, func(ctx context.Context) (interface{}, error) {
		resp, err := handler(ctx, req)
		return resp, statusAsContextErr(ctx, err)
	})
	if e, ok := err.(*statusCancellation); ok {
		err = e.status
	}
	return resp, err
}

//statusCancellation gRPC status error which tells the same as ctx.Err()
type statusCancellation struct {
	status error
	ctxErr error
}

func statusAsContextErr(ctx context.Context, err error) error {
	ctxErr := ctx.Err()
	if err == nil || ctxErr == nil {
		return err
	}
	var expected codes.Code
	switch ctxErr {
	case context.Canceled:
		expected = codes.Canceled
	case context.DeadlineExceeded:
		expected = codes.DeadlineExceeded
	default:
		return err
	}
	if st, ok := status.FromError(err); ok && st.Code() == expected {
		return &statusCancellation{status: err, ctxErr: ctxErr}
	}
	return err
}

//Error impl error
func (e *statusCancellation) Error() string {
	return e.status.Error()
}

//Unwrap gives status and context errors
func (e *statusCancellation) Unwrap() []error {
	return []error{e.status, e.ctxErr}
}
