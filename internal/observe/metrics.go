// Package observe holds the OpenTelemetry metric instruments of the rules
// service and the Prometheus bridge that exposes them on /metrics.
//
// Tests should build Metrics with NewMetrics and an SDK ManualReader rather
// than the global provider.
package observe

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/KirkDiggler/ordem-api"

// Status attribute values
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics holds every metric instrument of the service. The OTel types are
// safe for concurrent use.
type Metrics struct {
	// Rolls counts dice-pool tests. Attributes: kind (skill, attack,
	// resistance, damage), outcome.
	Rolls metric.Int64Counter

	// ConditionChanges counts condition transitions. Attributes: condition,
	// change (applied, removed, escalated, derived).
	ConditionChanges metric.Int64Counter

	// RitualCasts counts resolved casts. Attributes: mode, outcome (success,
	// failure, critical_failure).
	RitualCasts metric.Int64Counter

	// Deaths counts characters that died during turn processing or damage
	Deaths metric.Int64Counter

	// OperationDuration tracks orchestrator operation latency. Attributes:
	// operation, status.
	OperationDuration metric.Float64Histogram
}

var latencyBuckets = []float64{
	0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1,
}

// NewMetrics creates the instruments on the given provider
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Rolls, err = m.Int64Counter("ordem.rolls",
		metric.WithDescription("Dice-pool tests by kind and outcome."),
	); err != nil {
		return nil, err
	}
	if met.ConditionChanges, err = m.Int64Counter("ordem.condition.changes",
		metric.WithDescription("Condition transitions by condition and change."),
	); err != nil {
		return nil, err
	}
	if met.RitualCasts, err = m.Int64Counter("ordem.ritual.casts",
		metric.WithDescription("Ritual casts by mode and outcome."),
	); err != nil {
		return nil, err
	}
	if met.Deaths, err = m.Int64Counter("ordem.deaths",
		metric.WithDescription("Characters that died."),
	); err != nil {
		return nil, err
	}
	if met.OperationDuration, err = m.Float64Histogram("ordem.operation.duration",
		metric.WithDescription("Latency of rules operations."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level Metrics built on the global meter
// provider. It panics if instrument creation fails.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordRoll counts a dice-pool test
func (m *Metrics) RecordRoll(ctx context.Context, kind, outcome string) {
	m.Rolls.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("kind", kind),
			attribute.String("outcome", outcome),
		),
	)
}

// RecordConditionChange counts a condition transition
func (m *Metrics) RecordConditionChange(ctx context.Context, condition, change string) {
	m.ConditionChanges.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("condition", condition),
			attribute.String("change", change),
		),
	)
}

// RecordRitualCast counts a resolved cast
func (m *Metrics) RecordRitualCast(ctx context.Context, mode, outcome string) {
	m.RitualCasts.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("mode", mode),
			attribute.String("outcome", outcome),
		),
	)
}

// RecordDeath counts a character death
func (m *Metrics) RecordDeath(ctx context.Context) {
	m.Deaths.Add(ctx, 1)
}

// ObserveOperation records the latency of an operation started at start.
// Use it in a defer with the operation's named error result.
func (m *Metrics) ObserveOperation(ctx context.Context, operation string, start time.Time, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.OperationDuration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}
