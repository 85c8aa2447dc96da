package signals

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/thataway/cancellation-pipeline/pkg/patterns/observer"
)

//SignalFromOS signals incoming from OS
type SignalFromOS struct {
	syscall.Signal
}

//SubjOfSignalsFromOS signals incoming from OS subject
func SubjOfSignalsFromOS() observer.Subject[SignalFromOS] {
	return subjOfSignalsFromOS
}

//IsExitSignal checks if signal asks application to exit
func IsExitSignal(sig syscall.Signal) bool {
	switch sig {
	case syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP, syscall.SIGABRT:
		return true
	}
	return false
}

var subjOfSignalsFromOS = observer.NewSubject[SignalFromOS]()

func init() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP, syscall.SIGABRT)
	go func() {
		for {
			switch sig := (<-ch).(type) {
			case syscall.Signal:
				subjOfSignalsFromOS.Notify(SignalFromOS{Signal: sig})
			}
		}
	}()
}
