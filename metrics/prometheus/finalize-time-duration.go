package prometheus_metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/thataway/cancellation-pipeline/pipeline/cancellation"
)

func newFinalizeTimeHistogram(options metricsOptions) prometheus.Collector {
	res := new(finalizeTimeHistogram)
	res.HistogramVec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: options.Namespace,
		Subsystem: options.Subsystem,
		Name:      "finalize_time",
		Help:      "finalizer duration in milliseconds",
		Buckets:   res.defaultBucket(),
	}, []string{LabelRequestType, LabelFinalizer})
	return res
}

type finalizeTimeHistogram struct {
	*prometheus.HistogramVec
}

func (met *finalizeTimeHistogram) defaultBucket() []float64 {
	return []float64{
		.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000}
}

func (met *finalizeTimeHistogram) observeEvent(ev cancellation.Event) {
	switch ev.Outcome {
	case cancellation.OutcomeFinalized, cancellation.OutcomeFinalizerFailed:
	default:
		return
	}
	labs := prometheus.Labels{
		LabelRequestType: requestTypeLabel(ev),
		LabelFinalizer:   ev.Finalizer.String(),
	}
	milliseconds := float64(ev.FinalizeDuration) / float64(time.Millisecond)
	met.With(labs).Observe(milliseconds)
}
