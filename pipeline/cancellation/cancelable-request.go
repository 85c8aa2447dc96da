package cancellation

import (
	"reflect"

	"github.com/thataway/cancellation-pipeline/pkg/functional"
)

type (
	//CancelableRequest request which response survives cancellation; Response returns the response
	//as it is right now, possibly partially built by the handler
	CancelableRequest[R any] interface {
		Response() R
	}

	//Unit is the response of requests which carry no data
	Unit struct{}

	//VoidRequest embed it into requests with no data in response
	VoidRequest struct{}
)

//UnitValue the only Unit value
var UnitValue Unit

var _ CancelableRequest[Unit] = VoidRequest{}

//Response returns UnitValue
func (VoidRequest) Response() Unit {
	return UnitValue
}

//IsCancelableType checks if values of the type expose `Response() R`
func IsCancelableType(reqType reflect.Type) bool {
	_, ok := responseTypeOf(reqType)
	return ok
}

func responseTypeOf(reqType reflect.Type) (reflect.Type, bool) {
	if reqType == nil || reqType.Kind() == reflect.Interface {
		return nil, false
	}
	sig, err := functional.MethodSignatureOf(reqType, responseMethod)
	if err != nil {
		return nil, false
	}
	args, variadic := sig.ArgsInfo()
	res := sig.ResultsInfo()
	if len(args) != 0 || variadic || len(res) != 1 {
		return nil, false
	}
	return res[0], true
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

const (
	responseMethod = "Response"
	finalizeMethod = "Finalize"
)
