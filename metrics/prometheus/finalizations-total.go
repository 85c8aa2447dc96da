package prometheus_metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/thataway/cancellation-pipeline/pipeline/cancellation"
)

type finalizationsMetric struct {
	*prometheus.CounterVec
}

func newFinalizationsMetric(options metricsOptions) prometheus.Collector {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: options.Namespace,
		Subsystem: options.Subsystem,
		Name:      "finalizations",
		Help:      "finalizer invocations counter",
	}, []string{LabelRequestType, LabelFinalizer})
	return &finalizationsMetric{CounterVec: vec}
}

func (met *finalizationsMetric) observeEvent(ev cancellation.Event) {
	switch ev.Outcome {
	case cancellation.OutcomeFinalized, cancellation.OutcomeFinalizerFailed:
	default:
		return
	}
	met.With(prometheus.Labels{
		LabelRequestType: requestTypeLabel(ev),
		LabelFinalizer:   ev.Finalizer.String(),
	}).Inc()
}
