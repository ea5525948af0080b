package calc

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	pagesCounter  metric.Int64Counter
	pageHistogram metric.Float64Histogram
	errorCounter  metric.Int64Counter
	exportCounter metric.Int64Counter
	resultGauge   metric.Float64Gauge
)

// InitMetrics registers the calculator's custom OTel metric instruments.
// Call once at startup, after the meter provider is installed.
func InitMetrics() error {
	meter := otel.Meter("calc")

	var err error

	pagesCounter, err = meter.Int64Counter("calc.pages.total",
		metric.WithDescription("Total number of calculator page evaluations"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return fmt.Errorf("creating pages counter: %w", err)
	}

	pageHistogram, err = meter.Float64Histogram("calc.page.duration",
		metric.WithDescription("Duration of calculator page evaluations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100),
	)
	if err != nil {
		return fmt.Errorf("creating page histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calc.errors.total",
		metric.WithDescription("Total number of calculator errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	exportCounter, err = meter.Int64Counter("calc.exports.total",
		metric.WithDescription("Total number of exported artifacts by format"),
		metric.WithUnit("{artifact}"),
	)
	if err != nil {
		return fmt.Errorf("creating export counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("calc.last_result",
		metric.WithDescription("The primary result of the last page evaluation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	return nil
}
