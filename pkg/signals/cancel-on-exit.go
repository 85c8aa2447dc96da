package signals

import (
	"context"

	"github.com/pkg/errors"
	"github.com/thataway/cancellation-pipeline/pkg/patterns/observer"
)

//ErrExitSignal cancellation cause of contexts made by CancelOnExit
var ErrExitSignal = errors.New("exit signal is received")

//CancelOnExit returns context which is canceled when exit signal is received from OS;
//its cancellation cause wraps ErrExitSignal
func CancelOnExit(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(ctx)
	obs := observer.NewObserver[SignalFromOS](func(sig SignalFromOS) {
		if IsExitSignal(sig.Signal) {
			cancel(errors.Wrapf(ErrExitSignal, "%v", sig.Signal))
		}
	}, true)
	SubjOfSignalsFromOS().ObserversAttach(obs)
	return ctx, func() {
		SubjOfSignalsFromOS().ObserversDetach(obs)
		_ = obs.Close()
		cancel(nil)
	}
}
