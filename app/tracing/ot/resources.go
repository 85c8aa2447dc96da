package ot

import (
	"context"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"go.opentelemetry.io/otel/attribute"
	sdkRes "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

//AppIdentity identity of application in traces
type AppIdentity struct {
	Namespace string
	Name      string
	Version   string
	//InstanceID is generated when not set
	InstanceID uuid.UUID
}

//MakeAppResource make app trace resource
func MakeAppResource(ctx context.Context, id AppIdentity) (*sdkRes.Resource, error) {
	if id.InstanceID == uuid.Nil {
		id.InstanceID = uuid.NewV4()
	}
	opts := []sdkRes.Option{
		sdkRes.WithOS(),
		sdkRes.WithProcess(),
	}
	attrs := []attribute.KeyValue{
		semconv.ServiceInstanceIDKey.String(id.InstanceID.String()),
	}
	if len(id.Name) > 0 {
		attrs = append(attrs, semconv.ServiceNameKey.String(id.Name))
	}
	if len(id.Namespace) > 0 {
		attrs = append(attrs, semconv.ServiceNamespaceKey.String(id.Namespace))
	}
	if len(id.Version) > 0 {
		attrs = append(attrs, semconv.ServiceVersionKey.String(id.Version))
	}
	opts = append(opts, sdkRes.WithAttributes(attrs...))
	res, err := sdkRes.New(ctx, opts...)
	if errors.Is(err, sdkRes.ErrPartialResource) {
		err = nil //some OS/process details are not detected
	}
	return res, err
}
