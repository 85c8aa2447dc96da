package ot

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

//ErrUnknownExporterKind unknown exporter kind
var ErrUnknownExporterKind = errors.New("unknown exporter kind")

type (
	//ExporterKindOf selects what is exporter we need
	ExporterKindOf interface {
		exporterIs()
	}

	//Stdout simplest sink via io.Writer
	Stdout struct {
		ExporterKindOf
		io.Writer
		PrettyPrint bool
	}

	//Noop no operation exporter
	Noop struct {
		ExporterKindOf
	}
)

//NewExporter makes new instance of trace.SpanExporter
func NewExporter(_ context.Context, kindOf ExporterKindOf) (trace.SpanExporter, error) {
	const api = "ot.NewExporter"
	var (
		ret trace.SpanExporter
		err error
	)
	switch conf := kindOf.(type) {
	case Stdout:
		opts := []stdouttrace.Option{stdouttrace.WithWriter(conf.Writer)}
		if conf.PrettyPrint {
			opts = append(opts, stdouttrace.WithPrettyPrint())
		}
		ret, err = stdouttrace.New(opts...)
	case Noop:
		ret = tracetest.NewNoopExporter()
	default:
		err = ErrUnknownExporterKind
	}
	return ret, errors.Wrap(err, api)
}
