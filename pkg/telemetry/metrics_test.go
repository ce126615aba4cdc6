package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestCounter_RecordsWithAttributes(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(mp)
	defer mp.Shutdown(context.Background()) //nolint:errcheck

	c, err := NewCounter("weather.lookups", "weather provider calls")
	if err != nil {
		t.Fatalf("NewCounter: %v", err)
	}
	c.Add(context.Background(), "outcome", "ok")
	c.Add(context.Background(), "outcome", "ok")
	c.Add(context.Background(), "outcome", "not_found")

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "weather.lookups" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("unexpected data type %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value(attribute.Key("outcome"))
				got[v.AsString()] = dp.Value
			}
		}
	}
	if got["ok"] != 2 || got["not_found"] != 1 {
		t.Fatalf("unexpected data points: %v", got)
	}
}

func TestCounter_NilIsNoop(t *testing.T) {
	var c *Counter
	c.Add(context.Background(), "outcome", "ok")
}
