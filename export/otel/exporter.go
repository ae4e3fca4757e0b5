package otel

import (
	"context"
	"errors"
	"fmt"

	goMetrics "github.com/MrEthical07/goMetrics"
	"github.com/MrEthical07/goMetrics/export/internaldefs"
	"go.opentelemetry.io/otel/metric"
)

var (
	ErrNilMeter  = errors.New("nil meter")
	ErrNilSource = errors.New("nil metrics source")
)

type metricsSource interface {
	MetricsSnapshot() goMetrics.Snapshot
	Keys() []string
}

type observedGauge struct {
	key        string
	instrument metric.Float64ObservableGauge
}

// OTelExporter bridges a metric suite into an OpenTelemetry meter. One
// Float64ObservableGauge is created per suite key; a single registered
// callback reads a snapshot on each collection cycle and observes only the
// keys with a defined value.
//
// The instrument set is fixed at construction from the source's keys;
// metrics registered afterwards are not exported.
type OTelExporter struct {
	source       metricsSource
	registration metric.Registration
	gauges       []observedGauge
}

// NewOTelExporter creates an exporter that reads from the given
// [goMetrics.Suite].
func NewOTelExporter(meter metric.Meter, suite *goMetrics.Suite) (*OTelExporter, error) {
	if suite == nil {
		return nil, ErrNilSource
	}
	return NewOTelExporterFromSource(meter, suite)
}

// NewOTelExporterFromSource creates an exporter from a custom snapshot
// source.
func NewOTelExporterFromSource(meter metric.Meter, source metricsSource) (*OTelExporter, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}
	if source == nil {
		return nil, ErrNilSource
	}

	keys := source.Keys()
	exporter := &OTelExporter{
		source: source,
		gauges: make([]observedGauge, 0, len(keys)),
	}

	observables := make([]metric.Observable, 0, len(keys))
	for _, key := range keys {
		name := internaldefs.MetricName(key)
		ins, err := meter.Float64ObservableGauge(name, metric.WithDescription(internaldefs.DefaultHelp))
		if err != nil {
			return nil, fmt.Errorf("create observable gauge %s: %w", name, err)
		}
		exporter.gauges = append(exporter.gauges, observedGauge{key: key, instrument: ins})
		observables = append(observables, ins)
	}

	registration, err := meter.RegisterCallback(func(_ context.Context, observer metric.Observer) error {
		snapshot := exporter.source.MetricsSnapshot()
		for _, g := range exporter.gauges {
			if value, ok := snapshot.Values[g.key]; ok {
				observer.ObserveFloat64(g.instrument, value)
			}
		}
		return nil
	}, observables...)
	if err != nil {
		return nil, fmt.Errorf("register callback: %w", err)
	}

	exporter.registration = registration
	return exporter, nil
}

// Close unregisters the collection callback.
func (e *OTelExporter) Close() error {
	if e == nil || e.registration == nil {
		return nil
	}
	return e.registration.Unregister()
}
