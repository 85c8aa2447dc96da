package cancellation

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_IsCancelableType(t *testing.T) {
	cases := []struct {
		name     string
		reqType  reflect.Type
		expected bool
	}{
		{"pointer-receiver", reflect.TypeOf(&progress{}), true},
		{"pointer-receiver-by-value", reflect.TypeOf(progress{}), false},
		{"void-request", reflect.TypeOf(VoidRequest{}), true},
		{"embedded-void-request", reflect.TypeOf(&ping{}), true},
		{"plain", reflect.TypeOf(plain{}), false},
		{"interface", typeOf[CancelableRequest[string]](), false},
		{"nil", nil, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, IsCancelableType(c.reqType), c.name)
	}
}

func Test_PassThroughIsIdentity(t *testing.T) {
	ctx := context.Background()

	g := &greeting{text: "Hello John"}
	s, err := PassThrough[*greeting, string]{}.Finalize(ctx, g)
	require.NoError(t, err)
	assert.Equal(t, "Hello John", s)
	assert.Equal(t, "Hello John", g.text)

	p := &progress{steps: []string{"step", "step"}}
	before := append([]string(nil), p.steps...)
	steps, err := PassThrough[*progress, []string]{}.Finalize(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, before, steps)
	assert.Equal(t, before, p.steps, "response is not mutated")
	if assert.NotEmpty(t, steps) {
		assert.Same(t, &p.steps[0], &steps[0], "the very same backing array")
	}

	empty, err := PassThrough[*progress, []string]{}.Finalize(ctx, &progress{})
	require.NoError(t, err)
	assert.Nil(t, empty)

	u, err := PassThrough[*ping, Unit]{}.Finalize(ctx, &ping{})
	require.NoError(t, err)
	assert.Equal(t, UnitValue, u)
}
