package functional

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type forTestSignature struct {
	n int
}

func (ft *forTestSignature) Foo()             {}
func (ft *forTestSignature) Foo1(int)         {}
func (ft *forTestSignature) Foo2(int, string) {}
func (ft *forTestSignature) Foo3(...int)      {}
func (ft *forTestSignature) Foo4(int, ...string) {
	ft.n++
}

func (ft forTestSignature) Finalize(_ context.Context, s string) (int, error) {
	return len(s) + ft.n, nil
}

func Test_Signature(t *testing.T) {
	type simple struct {
		fun      interface{}
		variadic bool
		nArgs    int
	}
	obj := forTestSignature{}
	samples := []simple{
		{fun: func() {}, variadic: false, nArgs: 0},
		{fun: func(int) {}, variadic: false, nArgs: 1},
		{fun: func(int, string) {}, variadic: false, nArgs: 2},
		{fun: func(...int) {}, variadic: true, nArgs: 1},
		{fun: func(int, ...string) {}, variadic: true, nArgs: 2},
		{fun: obj.Foo, variadic: false, nArgs: 0},
		{fun: obj.Foo1, variadic: false, nArgs: 1},
		{fun: obj.Foo2, variadic: false, nArgs: 2},
		{fun: obj.Foo3, variadic: true, nArgs: 1},
		{fun: obj.Foo4, variadic: true, nArgs: 2},
	}
	for i := range samples {
		sample := samples[i]
		S, err := MaySignatureOf(sample.fun)
		assert.NoError(t, err)
		args, variadic := S.ArgsInfo()
		assert.Equal(t, sample.nArgs, len(args), "arg-count")
		assert.Equal(t, sample.variadic, variadic, "variadic")
	}

	S1 := MustSignatureOf(obj.Foo4)
	S2 := MustSignatureOf(func(int, ...string) {})
	assert.True(t, S1.EqualTo(S2), "equal-signatures")

	S3 := MustSignatureOf(func(int, ...string) error { return nil })
	assert.False(t, S1.EqualTo(S3), "results-differ")

	_, err := MaySignatureOf(10)
	assert.ErrorIs(t, err, ErrNotAFunction)
	_, err = MaySignatureOf(nil)
	assert.ErrorIs(t, err, ErrNotAFunction)
}

func Test_MethodSignature(t *testing.T) {
	ctxType := reflect.TypeOf((*context.Context)(nil)).Elem()
	errType := reflect.TypeOf((*error)(nil)).Elem()

	byPtr, err := MethodSignatureOf(reflect.TypeOf(&forTestSignature{}), "Finalize")
	require.NoError(t, err)
	args, variadic := byPtr.ArgsInfo()
	assert.False(t, variadic)
	assert.Equal(t, []reflect.Type{ctxType, reflect.TypeOf("")}, args)
	assert.Equal(t, []reflect.Type{reflect.TypeOf(0), errType}, byPtr.ResultsInfo())

	byValue, err := MethodSignatureOf(reflect.TypeOf(forTestSignature{}), "Finalize")
	require.NoError(t, err)
	assert.True(t, byPtr.EqualTo(byValue))

	type finalizer interface {
		Finalize(context.Context, string) (int, error)
	}
	byIface, err := MethodSignatureOf(reflect.TypeOf((*finalizer)(nil)).Elem(), "Finalize")
	require.NoError(t, err)
	assert.True(t, byPtr.EqualTo(byIface))

	_, err = MethodSignatureOf(reflect.TypeOf(forTestSignature{}), "Foo")
	assert.ErrorIs(t, err, ErrMethodNotFound, "pointer-receiver method is not in value method set")
}
