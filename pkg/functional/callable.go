package functional

import (
	"reflect"

	"github.com/pkg/errors"
)

//Callable is functional object interface
type Callable interface {
	Signature
	Invoke(...interface{}) ([]interface{}, error)
}

var (
	//ErrArgsNotMatched2Signature error when  arguments are not matched to signature
	ErrArgsNotMatched2Signature = errors.New("arguments are not matched to signature")

	//ErrCallPanicked when wrapped function panics
	ErrCallPanicked = errors.New("call panicked")
)

type callableImpl struct {
	Signature
	wrappedFunction reflect.Value
}

//MustCallableOf construct functional object or panic if error
func MustCallableOf(f interface{}) Callable {
	c, e := MayCallableOf(f)
	if e != nil {
		panic(e)
	}
	return c
}

//MayCallableOf construct functional object or return error
func MayCallableOf(funcObject interface{}) (Callable, error) {
	if c, ok := funcObject.(Callable); ok {
		return c, nil
	}
	var (
		ret callableImpl
		err error
	)
	if ret.Signature, err = MaySignatureOf(funcObject); err != nil {
		return nil, errors.Wrap(err, "MayCallableOf")
	}
	ret.wrappedFunction = reflect.Indirect(reflect.ValueOf(funcObject))
	return &ret, nil
}

//MethodOf makes functional object bound to receiver's exported method
func MethodOf(receiver interface{}, name string) (Callable, error) {
	const api = "MethodOf"
	if receiver == nil {
		return nil, errors.Wrap(ErrMethodNotFound, api)
	}
	m := reflect.ValueOf(receiver).MethodByName(name)
	if !m.IsValid() {
		return nil, errors.Wrapf(ErrMethodNotFound, "%s: '%T.%s'", api, receiver, name)
	}
	return &callableImpl{
		Signature:       signatureOfType(m.Type()),
		wrappedFunction: m,
	}, nil
}

func (obj *callableImpl) internalInvoke(args ...interface{}) (ret []reflect.Value, retErr error) {
	argsIn, variadic := obj.ArgsInfo()
	nMinArgs := len(argsIn)
	if variadic {
		nMinArgs--
	}
	nIn := len(args)
	if nIn < nMinArgs {
		return nil, errors.Wrap(ErrArgsNotMatched2Signature, "not enough args")
	}
	if nIn > len(argsIn) && !variadic {
		return nil, errors.Wrap(ErrArgsNotMatched2Signature, "too many args")
	}
	vargs := make([]reflect.Value, nIn)
	var checkArgType reflect.Type
	for i, arg := range args {
		if i < len(argsIn) {
			checkArgType = argsIn[i]
		}
		a := reflect.ValueOf(arg)
		if !a.IsValid() {
			a = reflect.New(checkArgType).Elem()
		} else if !a.Type().AssignableTo(checkArgType) {
			return nil, errors.Wrapf(ErrArgsNotMatched2Signature,
				"arg #%v: '%v' is not assignable to '%v'", i, a.Type(), checkArgType)
		}
		vargs[i] = a
	}
	defer func() {
		if r := recover(); r != nil {
			retErr = errors.Wrapf(ErrCallPanicked, "crashed: %v", r)
		}
	}()
	return obj.wrappedFunction.Call(vargs), nil
}

//Invoke call functional object or return error
func (obj *callableImpl) Invoke(args ...interface{}) ([]interface{}, error) {
	const api = "callable/Invoke"
	ret, err := obj.internalInvoke(args...)
	if err != nil {
		return nil, errors.Wrap(err, api)
	}
	if nRet := len(ret); nRet > 0 {
		result := make([]interface{}, nRet)
		for i := range ret {
			result[i] = ret[i].Interface()
		}
		return result, nil
	}
	return nil, nil
}
