package cancellation

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

type (
	progress struct {
		steps []string
	}

	greeting struct {
		text string
	}

	ping struct {
		VoidRequest
	}

	plain struct{}

	progressFinalizer struct{}

	otherProgressFinalizer struct{}

	failingFinalizer struct {
		err error
	}

	deadlineAwareFinalizer struct{}

	wrongArgsFinalizer struct{}

	wrongResultFinalizer struct{}

	notCancelableFinalizer struct{}
)

var errFinalizerFailed = errors.New("finalizer failed")

func (p *progress) Response() []string {
	return p.steps
}

func (g *greeting) Response() string {
	return g.text
}

func (progressFinalizer) Finalize(_ context.Context, p *progress) ([]string, error) {
	p.steps = append(p.steps, "finalized")
	return p.steps, nil
}

func (otherProgressFinalizer) Finalize(_ context.Context, p *progress) ([]string, error) {
	p.steps = append(p.steps, "other")
	return p.steps, nil
}

func (f failingFinalizer) Finalize(_ context.Context, g *greeting) (string, error) {
	return g.text, f.err
}

//takes a while but finishes because its context is never canceled
func (deadlineAwareFinalizer) Finalize(ctx context.Context, g *greeting) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(20 * time.Millisecond):
	}
	return g.text + " - finalized", nil
}

func (wrongArgsFinalizer) Finalize(p *progress) []string {
	return p.steps
}

func (wrongResultFinalizer) Finalize(context.Context, *progress) (string, error) {
	return "", nil
}

func (notCancelableFinalizer) Finalize(context.Context, *plain) (int, error) {
	return 0, nil
}

//stepper emulates handler which completes steps until cancellation is observed
func stepper(req *progress, steps int, cancelAfter int, cancel context.CancelFunc) Next[[]string] {
	return func(ctx context.Context) ([]string, error) {
		for i := 0; i < steps; i++ {
			if err := Check(ctx); err != nil {
				return nil, err
			}
			req.steps = append(req.steps, "step")
			if i+1 == cancelAfter {
				cancel()
			}
		}
		return req.steps, nil
	}
}
