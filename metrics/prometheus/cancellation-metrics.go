package prometheus_metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/thataway/cancellation-pipeline/pipeline/cancellation"
)

type (
	//Option metrics option
	Option interface {
		apply(*metricsOptions)
	}

	metricsOptions struct {
		Namespace string
		Subsystem string
	}

	//CancellationMetrics metrics of cancellation-aware pipeline stages
	CancellationMetrics struct {
		collectors []prometheus.Collector
		observer   cancellation.EventObserver
	}

	metricsOptionApplier func(*metricsOptions)

	eventsObserver interface {
		observeEvent(cancellation.Event)
	}
)

const ( //possible metrics labels
	LabelRequestType string = "request_type" //nolint
	LabelOutcome            = "outcome"      //nolint
	LabelFinalizer          = "finalizer"    //nolint
)

const (
	DefaultNamespace = "pipeline"     //nolint
	DefaultSubsystem = "cancellation" //nolint
)

var (
	_ prometheus.Collector = (*CancellationMetrics)(nil)
	_ Option               = (metricsOptionApplier)(nil)
)

//NewMetrics makes metrics; feed them with events from Observer
func NewMetrics(opts ...Option) *CancellationMetrics {
	options := metricsOptions{
		Namespace: DefaultNamespace,
		Subsystem: DefaultSubsystem,
	}
	for _, o := range opts {
		o.apply(&options)
	}
	ret := &CancellationMetrics{
		collectors: []prometheus.Collector{
			newInvocationsMetric(options),
			newFinalizationsMetric(options),
			newFinalizeTimeHistogram(options),
		},
	}
	var observers []eventsObserver
	for _, coll := range ret.collectors {
		if obs, ok := coll.(eventsObserver); ok {
			observers = append(observers, obs)
		}
	}
	ret.observer = func(ev cancellation.Event) {
		for _, o := range observers {
			o.observeEvent(ev)
		}
	}
	return ret
}

//Observer stage events observer, pass it to cancellation.WithObservers
func (m *CancellationMetrics) Observer() cancellation.EventObserver {
	return m.observer
}

//Describe impl prometheus.Collector
func (m *CancellationMetrics) Describe(c chan<- *prometheus.Desc) {
	for _, coll := range m.collectors {
		coll.Describe(c)
	}
}

//Collect impl prometheus.Collector
func (m *CancellationMetrics) Collect(c chan<- prometheus.Metric) {
	for _, coll := range m.collectors {
		coll.Collect(c)
	}
}

//WithNamespace sets Namespace to metrics
func WithNamespace(ns string) Option {
	var ret metricsOptionApplier = func(options *metricsOptions) {
		options.Namespace = ns
	}
	return ret
}

//WithSubsystem  sets Subsystem to metrics
func WithSubsystem(ss string) Option {
	var ret metricsOptionApplier = func(options *metricsOptions) {
		options.Subsystem = ss
	}
	return ret
}

func (f metricsOptionApplier) apply(o *metricsOptions) {
	f(o)
}

func requestTypeLabel(ev cancellation.Event) string {
	if ev.RequestType == nil {
		return "unknown"
	}
	return ev.RequestType.String()
}
