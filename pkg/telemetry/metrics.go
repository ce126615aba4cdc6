package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ghuser/wardrobe"

// Counter is a named Int64 counter on the global meter provider. Instruments
// created before Setup delegate to the provider installed later.
type Counter struct {
	c metric.Int64Counter
}

// NewCounter creates a counter called name on the project meter.
func NewCounter(name, description string) (*Counter, error) {
	c, err := otel.Meter(meterName).Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		return nil, err
	}
	return &Counter{c: c}, nil
}

// Add increments the counter by one, tagged with the given string attributes
// given as key/value pairs. A nil Counter is a no-op.
func (c *Counter) Add(ctx context.Context, kv ...string) {
	if c == nil {
		return
	}
	attrs := make([]attribute.KeyValue, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs = append(attrs, attribute.String(kv[i], kv[i+1]))
	}
	c.c.Add(ctx, 1, metric.WithAttributes(attrs...))
}
