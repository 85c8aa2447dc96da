package prometheus_metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/thataway/cancellation-pipeline/pipeline/cancellation"
)

type invocationsMetric struct {
	*prometheus.CounterVec
}

func newInvocationsMetric(options metricsOptions) prometheus.Collector {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: options.Namespace,
		Subsystem: options.Subsystem,
		Name:      "invocations",
		Help:      "stage invocations counter by outcome",
	}, []string{LabelRequestType, LabelOutcome})
	return &invocationsMetric{CounterVec: vec}
}

func (met *invocationsMetric) observeEvent(ev cancellation.Event) {
	met.With(prometheus.Labels{
		LabelRequestType: requestTypeLabel(ev),
		LabelOutcome:     ev.Outcome.String(),
	}).Inc()
}
