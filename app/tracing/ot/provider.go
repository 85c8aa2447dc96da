package ot

import (
	"context"

	sdkRes "go.opentelemetry.io/otel/sdk/resource"
	sdkTrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

type (
	//TracerProvider ...
	TracerProvider interface {
		trace.TracerProvider
		ForceFlush(ctx context.Context) error
		Shutdown(ctx context.Context) error
	}

	//TraceProviderDeps TracerProvider deps
	TraceProviderDeps struct {
		Sampler  sdkTrace.Sampler
		Exporter sdkTrace.SpanExporter
		//Syncer exports spans synchronously, useful for short-lived processes
		Syncer   bool
		Resource *sdkRes.Resource //optional
	}
)

//NewAppTraceProvider creates trace.TracerProvider instance
func NewAppTraceProvider(_ context.Context, deps TraceProviderDeps) TracerProvider {
	if deps.Sampler == nil {
		deps.Sampler = sdkTrace.AlwaysSample()
	}
	opts := []sdkTrace.TracerProviderOption{
		sdkTrace.WithSampler(deps.Sampler),
	}
	if deps.Resource != nil {
		opts = append(opts, sdkTrace.WithResource(deps.Resource))
	}
	if exp := deps.Exporter; exp != nil {
		if deps.Syncer {
			opts = append(opts, sdkTrace.WithSyncer(exp))
		} else {
			opts = append(opts, sdkTrace.WithBatcher(exp))
		}
	}
	return sdkTrace.NewTracerProvider(opts...)
}
