package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the board's instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// MutationTotal counts optimistic mutations applied to the store.
	MutationTotal metric.Int64Counter
	// Confirmation instruments carry result="confirmed" or "rejected".
	ConfirmationDuration metric.Float64Histogram
	ConfirmationTotal    metric.Int64Counter
	// CompensationTotal counts batches rolled back after a rejection.
	CompensationTotal metric.Int64Counter
}

// EntityCounts is a point-in-time count of stored entities.
type EntityCounts struct {
	Boards  int
	Columns int
	Tasks   int
}

type instrument struct {
	name, desc, unit string
	histogram        *metric.Float64Histogram
	counter          *metric.Int64Counter
}

// NewMetrics creates every instrument on a meter named after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	m := &Metrics{}

	instruments := []instrument{
		{name: "http.server.request.duration", desc: "Duration of incoming HTTP requests", unit: "s", histogram: &m.ServerRequestDuration},
		{name: "http.server.request.total", desc: "Incoming HTTP requests", unit: "{request}", counter: &m.ServerRequestTotal},
		{name: "http.client.request.duration", desc: "Duration of requests to the sync API", unit: "s", histogram: &m.ClientRequestDuration},
		{name: "http.client.request.total", desc: "Requests to the sync API", unit: "{request}", counter: &m.ClientRequestTotal},
		{name: "kanban.mutation.total", desc: "Optimistic mutations applied to the store", unit: "{mutation}", counter: &m.MutationTotal},
		{name: "kanban.confirmation.duration", desc: "Duration of confirmation round trips", unit: "s", histogram: &m.ConfirmationDuration},
		{name: "kanban.confirmation.total", desc: "Settled confirmations", unit: "{mutation}", counter: &m.ConfirmationTotal},
		{name: "kanban.compensation.total", desc: "Mutations rolled back after rejection", unit: "{mutation}", counter: &m.CompensationTotal},
	}

	for _, in := range instruments {
		var err error
		switch {
		case in.histogram != nil:
			*in.histogram, err = meter.Float64Histogram(in.name, metric.WithDescription(in.desc), metric.WithUnit(in.unit))
		case in.counter != nil:
			*in.counter, err = meter.Int64Counter(in.name, metric.WithDescription(in.desc), metric.WithUnit(in.unit))
		}
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", in.name, err)
		}
	}
	return m, nil
}

// RegisterEntityGauges registers kanban.entity.count, observed per entity
// kind. counts runs on every collection.
func RegisterEntityGauges(mp metric.MeterProvider, serviceName string, counts func() EntityCounts) error {
	meter := mp.Meter(serviceName)

	gauge, err := meter.Int64ObservableGauge(
		"kanban.entity.count",
		metric.WithDescription("Entities held by the store"),
		metric.WithUnit("{entity}"),
	)
	if err != nil {
		return fmt.Errorf("creating kanban.entity.count: %w", err)
	}

	_, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		c := counts()
		for kind, n := range map[string]int{"board": c.Boards, "column": c.Columns, "task": c.Tasks} {
			o.ObserveInt64(gauge, int64(n), metric.WithAttributes(AttrEntity.String(kind)))
		}
		return nil
	}, gauge)
	if err != nil {
		return fmt.Errorf("registering kanban.entity.count callback: %w", err)
	}
	return nil
}
