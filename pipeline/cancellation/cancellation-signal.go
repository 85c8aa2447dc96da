package cancellation

import (
	"context"

	"github.com/pkg/errors"
)

//CanceledError is raised by Check when cancellation of the context is requested;
//it remembers the invocation scope it is raised in
type CanceledError struct {
	err   error
	cause error
	scope *invocationScope
	//own is true when cancellation comes from the scope itself and not from the inner context
	own bool
}

type (
	invocationScope struct {
		ctx context.Context
	}

	scopeKey struct{}
)

var _ error = (*CanceledError)(nil)

//WithScope marks ctx as cancellation scope of one invocation. Check called with ctx or with its
//descendants ties *CanceledError to this scope so IsSelfCancellation can tell it from
//cancellation of any other context
func WithScope(ctx context.Context) context.Context {
	return context.WithValue(ctx, scopeKey{}, &invocationScope{ctx: ctx})
}

func scopeOf(ctx context.Context) *invocationScope {
	sc, _ := ctx.Value(scopeKey{}).(*invocationScope)
	return sc
}

//Check returns *CanceledError if cancellation of ctx is requested, nil otherwise
func Check(ctx context.Context) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}
	ret := &CanceledError{
		err:   err,
		cause: context.Cause(ctx),
	}
	if sc := scopeOf(ctx); sc != nil {
		ret.scope = sc
		ret.own = sameCancellation(sc.ctx, ret.err, ret.cause)
	}
	return ret
}

//Error impl error
func (e *CanceledError) Error() string {
	if !e.causeIsErr() {
		return e.err.Error() + ": " + e.cause.Error()
	}
	return e.err.Error()
}

//Unwrap gives context error and cancellation cause
func (e *CanceledError) Unwrap() []error {
	if e.causeIsErr() {
		return []error{e.err}
	}
	return []error{e.err, e.cause}
}

//Cause cancellation cause
func (e *CanceledError) Cause() error {
	return e.cause
}

func (e *CanceledError) causeIsErr() bool {
	return e.cause == nil || errors.Is(e.err, e.cause)
}

//sameCancellation checks if ctx is canceled with exactly err and cause
func sameCancellation(ctx context.Context, err, cause error) bool {
	ctxErr := ctx.Err()
	return ctxErr != nil &&
		errors.Is(err, ctxErr) &&
		errors.Is(cause, context.Cause(ctx))
}

//IsCancellationKind checks if err is cancellation-shaped
func IsCancellationKind(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

//IsSelfCancellation checks if err is caused by cancellation of ctx itself.
//Cancellation of ctx must be requested.
//
//When ctx is marked by WithScope, *CanceledError correlates only if it is raised within the same
//scope by cancellation of the scope itself; a deadline or cancel of a context derived inside the
//scope, or of any context outside of it, never correlates.
//When ctx is not marked, *CanceledError correlates when its context error and cause match those
//of ctx; two contexts canceled with the same cause are undistinguishable then, e.g. both canceled
//by plain cancel().
//Other errors correlate when they match ctx cancellation cause or ctx.Err()
func IsSelfCancellation(ctx context.Context, err error) bool {
	if err == nil || ctx.Err() == nil {
		return false
	}
	var canceled *CanceledError
	if errors.As(err, &canceled) {
		if sc := scopeOf(ctx); sc != nil {
			return canceled.scope == sc && canceled.own
		}
		return canceled.scope == nil && sameCancellation(ctx, canceled.err, canceled.cause)
	}
	return errors.Is(err, context.Cause(ctx)) || errors.Is(err, ctx.Err())
}
