package cancellation

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Check(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, Check(ctx))
	cancel()
	err := Check(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, context.Canceled.Error(), err.Error())

	var canceled *CanceledError
	require.True(t, errors.As(err, &canceled))
	assert.ErrorIs(t, canceled.Cause(), context.Canceled)

	errStop := errors.New("stop")
	ctx, cancelCause := context.WithCancelCause(context.Background())
	cancelCause(errStop)
	err = Check(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, errStop)
	assert.Contains(t, err.Error(), "stop")
	assert.True(t, IsCancellationKind(err))
}

func Test_IsCancellationKind(t *testing.T) {
	assert.True(t, IsCancellationKind(context.Canceled))
	assert.True(t, IsCancellationKind(errors.Wrap(context.DeadlineExceeded, "upload")))
	assert.False(t, IsCancellationKind(errors.New("fail")))
	assert.False(t, IsCancellationKind(nil))
}

func Test_IsSelfCancellation(t *testing.T) {
	errMine := errors.New("mine")
	errOther := errors.New("other")

	live := context.Background()

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	withCause, cancelCause := context.WithCancelCause(context.Background())
	cancelCause(errMine)

	child, cancelChild := context.WithCancel(canceled)
	defer cancelChild()

	unrelated, cancelUnrelated := context.WithCancelCause(context.Background())
	cancelUnrelated(errOther)

	expired, cancelExpired := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancelExpired()
	<-expired.Done()

	unrelatedDeadline, cancelUnrelatedDeadline := context.WithCancelCause(context.Background())
	cancelUnrelatedDeadline(context.DeadlineExceeded)

	cases := []struct {
		name     string
		ctx      context.Context
		err      error
		expected bool
	}{
		{"nil-error", canceled, nil, false},
		{"ctx-is-not-canceled", live, context.Canceled, false},
		{"ctx-is-not-canceled-check", live, Check(canceled), false},
		{"own-check", canceled, Check(canceled), true},
		{"own-wrapped-check", canceled, errors.Wrap(Check(canceled), "handler"), true},
		{"plain-canceled", canceled, context.Canceled, true},
		{"wrapped-canceled", canceled, errors.Wrap(context.Canceled, "handler"), true},
		{"regular-failure", canceled, errors.New("fail"), false},
		{"inner-deadline", canceled, context.DeadlineExceeded, false},
		{"inner-deadline-check", canceled, Check(expired), false},
		{"descendant-check", canceled, Check(child), true},
		{"own-cause", withCause, errMine, true},
		{"own-cause-check", withCause, Check(withCause), true},
		{"other-cause", withCause, errOther, false},
		{"unrelated-check", withCause, Check(unrelated), false},
		{"unrelated-deadline-cause-check", canceled, Check(unrelatedDeadline), false},
		{"own-deadline", expired, Check(expired), true},
		{"own-deadline-plain", expired, context.DeadlineExceeded, true},
		{"canceled-while-deadline", expired, context.Canceled, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, IsSelfCancellation(c.ctx, c.err), c.name)
	}
}

func Test_IsSelfCancellationInScope(t *testing.T) {
	//all contexts are canceled before anyone looks at their Done channels
	own, cancelOwn := context.WithCancel(context.Background())
	scoped := WithScope(own)

	other, cancelOther := context.WithCancel(context.Background())
	cancelOther()
	otherScoped := WithScope(other)

	unrelatedDeadline, cancelUnrelatedDeadline := context.WithCancelCause(context.Background())
	cancelUnrelatedDeadline(context.DeadlineExceeded)

	inner, cancelInner := context.WithTimeout(scoped, 0)
	defer cancelInner()
	innerDeadlineWhileLive := Check(inner)
	require.Error(t, innerDeadlineWhileLive)

	cancelOwn()
	child, cancelChild := context.WithCancel(scoped)
	defer cancelChild()

	cases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"own-check", Check(scoped), true},
		{"own-wrapped-check", errors.Wrap(Check(scoped), "handler"), true},
		{"descendant-check", Check(child), true},
		{"plain-canceled", context.Canceled, true},
		{"other-canceled-check", Check(other), false},
		{"other-scope-check", Check(otherScoped), false},
		{"unrelated-deadline-cause-check", Check(unrelatedDeadline), false},
		{"inner-deadline-check", Check(inner), false},
		{"inner-deadline-while-live-check", innerDeadlineWhileLive, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, IsSelfCancellation(scoped, c.err), c.name)
	}
	assert.False(t, IsSelfCancellation(own, Check(scoped)), "scoped error outside of scope")
}
