package signals

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/thataway/cancellation-pipeline/pkg/patterns/observer"
	"go.uber.org/multierr"
)

//WhenSignalExit adds `func() error` callback to the globalCloser
func WhenSignalExit(f ...func() error) {
	globalAtExitManager.WhenSignalExit(f...)
}

//CloseAtExit calls all callbacks added by WhenSignalExit
func CloseAtExit() error {
	return globalAtExitManager.Close()
}

// AtExitManager ...
type AtExitManager struct {
	sync.Mutex
	closeOnce    sync.Once
	closed       chan struct{}
	rip          []func() error
	isClosing    bool
	obs          observer.Observer[SignalFromOS]
	errFromClose error
}

//NewAtExitManager returns new AtExitManager, it calls Close when exit signal is received from OS
func NewAtExitManager() *AtExitManager {
	return &AtExitManager{closed: make(chan struct{})}
}

//WhenSignalExit register RIP functions
func (c *AtExitManager) WhenSignalExit(f ...func() error) {
	c.Lock()
	defer c.Unlock()
	if c.isClosing {
		return
	}
	if c.obs == nil {
		c.obs = observer.NewObserver[SignalFromOS](func(sig SignalFromOS) {
			if IsExitSignal(sig.Signal) {
				_ = c.Close()
			}
		}, true)
		SubjOfSignalsFromOS().ObserversAttach(c.obs)
	}
	c.rip = append(c.rip, f...)
}

// Wait4Closed blocks until all closer functions are done
func (c *AtExitManager) Wait4Closed(ctx context.Context) error {
	select {
	case <-c.closed:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// Close calls all closer functions in reverse order
func (c *AtExitManager) Close() error {
	const api = "AtExitManager.Close"
	c.closeOnce.Do(func() {
		defer close(c.closed)
		c.Lock()
		c.isClosing = true
		funcs, obs := c.rip, c.obs
		c.rip, c.obs = nil, nil
		c.Unlock()
		if obs != nil {
			SubjOfSignalsFromOS().ObserversDetach(obs)
			_ = obs.Close()
		}
		errs := make([]error, 0, len(funcs))
		for i := len(funcs) - 1; i >= 0; i-- {
			if e := funcs[i](); e != nil {
				errs = append(errs, e)
			}
		}
		c.errFromClose = errors.Wrap(multierr.Combine(errs...), api)
	})
	return c.errFromClose
}

var globalAtExitManager = NewAtExitManager()
