package cancellation

import (
	"context"
	"reflect"

	"github.com/pkg/errors"
	"github.com/thataway/cancellation-pipeline/pkg/functional"
	"go.uber.org/multierr"
)

//FinalizerKind tells what kind of finalizer is resolved for request type
type FinalizerKind int8

const (
	//KindPassThrough default PassThrough finalizer
	KindPassThrough FinalizerKind = iota + 1
	//KindCustom finalizer registered for the request type
	KindCustom
)

//String impl fmt.Stringer
func (k FinalizerKind) String() string {
	switch k {
	case KindPassThrough:
		return "passthrough"
	case KindCustom:
		return "custom"
	}
	return "unknown"
}

type (
	//Registry maps request types to their finalizers, it is immutable once built
	Registry struct {
		entries map[reflect.Type]*registryEntry
	}

	registryEntry struct {
		impl     interface{}
		finalize functional.Callable
	}
)

var (
	ctxType = typeOf[context.Context]()
	errType = typeOf[error]()
)

//NewRegistry scans candidates and registers each finalizer against the request type of its
//Finalize method. Candidates which are not finalizers and duplicates make it fail unless
//WithLastRegisteredWins is given
func NewRegistry(candidates []interface{}, opts ...Option) (*Registry, error) {
	const api = "cancellation/NewRegistry"
	options := makeOptions(opts...)
	reg := &Registry{
		entries: make(map[reflect.Type]*registryEntry, len(candidates)),
	}
	var errs []error
	for i, c := range candidates {
		reqType, entry, err := scanFinalizer(c)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "candidate #%v", i))
			continue
		}
		if prev := reg.entries[reqType]; prev != nil && !options.lastRegisteredWins {
			errs = append(errs, errors.Wrapf(ErrDuplicateFinalizer,
				"candidate #%v: '%T' and '%T' for '%v'", i, prev.impl, c, reqType))
			continue
		}
		reg.entries[reqType] = entry
	}
	if err := multierr.Combine(errs...); err != nil {
		return nil, errors.Wrap(err, api)
	}
	return reg, nil
}

//MustRegistry builds registry or panics
func MustRegistry(candidates []interface{}, opts ...Option) *Registry {
	reg, err := NewRegistry(candidates, opts...)
	if err != nil {
		panic(err)
	}
	return reg
}

func scanFinalizer(c interface{}) (reflect.Type, *registryEntry, error) {
	if c == nil {
		return nil, nil, ErrNilFinalizer
	}
	implType := reflect.TypeOf(c)
	sig, err := functional.MethodSignatureOf(implType, finalizeMethod)
	if err != nil {
		return nil, nil, errors.Wrapf(ErrNotAFinalizer, "'%v' has no %s method", implType, finalizeMethod)
	}
	args, variadic := sig.ArgsInfo()
	res := sig.ResultsInfo()
	if variadic || len(args) != 2 || args[0] != ctxType || len(res) != 2 || res[1] != errType {
		return nil, nil, errors.Wrapf(ErrNotAFinalizer,
			"'%v' has unexpected %s signature", implType, finalizeMethod)
	}
	reqType, respType := args[1], res[0]
	if r, ok := responseTypeOf(reqType); !ok || r != respType {
		return nil, nil, errors.Wrapf(ErrNotCancelable,
			"'%v' is expected to have `%s() %v`", reqType, responseMethod, respType)
	}
	finalize, err := functional.MethodOf(c, finalizeMethod)
	if err != nil {
		return nil, nil, errors.Wrapf(ErrNotAFinalizer, "'%v'", implType)
	}
	return reqType, &registryEntry{
		impl:     c,
		finalize: finalize,
	}, nil
}

//Len count of specific finalizers
func (reg *Registry) Len() int {
	if reg == nil {
		return 0
	}
	return len(reg.entries)
}

//Has checks if request type has specific finalizer
func (reg *Registry) Has(reqType reflect.Type) bool {
	return reg.lookup(reqType) != nil
}

//Kind tells which kind of finalizer will be used for request type
func (reg *Registry) Kind(reqType reflect.Type) FinalizerKind {
	if reg.Has(reqType) {
		return KindCustom
	}
	return KindPassThrough
}

func (reg *Registry) lookup(reqType reflect.Type) *registryEntry {
	if reg == nil {
		return nil
	}
	return reg.entries[reqType]
}

//Resolve returns finalizer registered for Req or PassThrough when there is none
func Resolve[Req CancelableRequest[R], R any](reg *Registry) Finalizer[Req, R] {
	if e := reg.lookup(typeOf[Req]()); e != nil {
		if f, ok := e.impl.(Finalizer[Req, R]); ok {
			return f
		}
	}
	return PassThrough[Req, R]{}
}

//finalizeAny finalizes request of any cancelable type
func (reg *Registry) finalizeAny(ctx context.Context, req interface{}) (interface{}, error) {
	const api = "cancellation/Finalize"
	var (
		ret []interface{}
		err error
	)
	if e := reg.lookup(reflect.TypeOf(req)); e != nil {
		ret, err = e.finalize.Invoke(ctx, req)
	} else {
		var response functional.Callable
		if response, err = functional.MethodOf(req, responseMethod); err == nil {
			ret, err = response.Invoke()
		}
	}
	if err != nil {
		return nil, errors.Wrap(err, api)
	}
	if len(ret) > 1 {
		if e, _ := ret[1].(error); e != nil {
			return ret[0], e
		}
	}
	return ret[0], nil
}
