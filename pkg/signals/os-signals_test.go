package signals

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/thataway/cancellation-pipeline/pkg/patterns/observer"
)

func Test_SubjectOfSignals(t *testing.T) {
	ch := make(chan SignalFromOS, 1)
	obs := observer.NewObserver[SignalFromOS](func(sig SignalFromOS) {
		select {
		case ch <- sig:
		default:
		}
	}, false)
	SubjOfSignalsFromOS().ObserversAttach(obs)
	defer SubjOfSignalsFromOS().ObserversDetach(obs)
	p, _ := os.FindProcess(os.Getpid())
	e := p.Signal(syscall.SIGHUP)
	assert.NoError(t, e)
	if e != nil {
		return
	}

	ctx, c := context.WithTimeout(context.Background(), 10*time.Second)
	defer c()

	select {
	case <-ch:
	case <-ctx.Done():
		e = ctx.Err()
	}
	assert.NoError(t, e)
}
