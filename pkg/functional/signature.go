package functional

import (
	"reflect"

	"github.com/pkg/errors"
)

//Signature is a function signature
type Signature interface {
	EqualTo(Signature) bool
	ArgsInfo() (args []reflect.Type, variadic bool)
	ResultsInfo() []reflect.Type
}

var (
	//ErrNotAFunction when a value is expected to be a function but it is not
	ErrNotAFunction = errors.New("function type value requires")

	//ErrMethodNotFound when receiver has no exported method with given name
	ErrMethodNotFound = errors.New("method is not found")
)

//MustSignatureOf inspect function signature or panic if error
func MustSignatureOf(funcObject interface{}) Signature {
	s, e := MaySignatureOf(funcObject)
	if e != nil {
		panic(e)
	}
	return s
}

//MaySignatureOf inspect function signature or return error
func MaySignatureOf(funcObject interface{}) (Signature, error) {
	const api = "MaySignatureOf"
	if funcObject == nil {
		return nil, errors.Wrap(ErrNotAFunction, api)
	}
	v := reflect.Indirect(reflect.ValueOf(funcObject))
	if v.Kind() != reflect.Func {
		return nil, errors.Wrapf(ErrNotAFunction, "%s: got '%v'", api, v.Type())
	}
	return signatureOfType(v.Type()), nil
}

//MethodSignatureOf inspect signature of the receiver's method, receiver itself is not included into args
func MethodSignatureOf(receiverType reflect.Type, name string) (Signature, error) {
	const api = "MethodSignatureOf"
	if receiverType == nil {
		return nil, errors.Wrap(ErrMethodNotFound, api)
	}
	m, ok := receiverType.MethodByName(name)
	if !ok {
		return nil, errors.Wrapf(ErrMethodNotFound, "%s: '%v.%s'", api, receiverType, name)
	}
	ty := m.Type
	if receiverType.Kind() != reflect.Interface {
		//method expression type carries receiver as the first arg
		ret := signatureOfType(ty)
		ret.argsIn = ret.argsIn[1:]
		return ret, nil
	}
	return signatureOfType(ty), nil
}

func signatureOfType(t reflect.Type) *signature {
	result := &signature{variadic: t.IsVariadic()}
	nIn, nOut := t.NumIn(), t.NumOut()
	for i := 0; i < nIn; i++ {
		tA := t.In(i)
		if (i+1) == nIn && result.variadic {
			tA = tA.Elem()
		}
		result.argsIn = append(result.argsIn, tA)
	}
	for i := 0; i < nOut; i++ {
		result.argsOut = append(result.argsOut, t.Out(i))
	}
	return result
}

type signature struct {
	argsIn   []reflect.Type
	argsOut  []reflect.Type
	variadic bool
}

//ArgsInfo input arguments info
func (si *signature) ArgsInfo() (args []reflect.Type, variadic bool) {
	return si.argsIn, si.variadic
}

//ResultsInfo output types info
func (si *signature) ResultsInfo() []reflect.Type {
	return si.argsOut
}

//EqualTo check if signatures have the same input and output types
func (si *signature) EqualTo(other Signature) bool {
	argsR, variadic := other.ArgsInfo()
	if si.variadic != variadic {
		return false
	}
	return sameTypes(si.argsIn, argsR) && sameTypes(si.argsOut, other.ResultsInfo())
}

func sameTypes(l, r []reflect.Type) bool {
	if len(l) != len(r) {
		return false
	}
	for i := range l {
		if l[i] != r[i] {
			return false
		}
	}
	return true
}
