// Package observe provides application-wide observability primitives for
// the arrmcp servers: OpenTelemetry metrics, distributed tracing, structured
// logging, and HTTP middleware that ties them together.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A Prometheus
// exporter bridge is available via [InitProvider] so that metrics can still be
// scraped via the standard /metrics endpoint. A package-level default
// [Metrics] instance ([DefaultMetrics]) is provided for convenience; tests
// should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all arrmcp metrics.
const meterName = "github.com/arrmcp/arrmcp"

// Metrics holds all OpenTelemetry metric instruments for the application.
// All fields are safe for concurrent use — the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// --- Latency histograms ---

	// ToolCallDuration tracks MCP tool dispatch latency, including the
	// upstream REST round trip.
	ToolCallDuration metric.Float64Histogram

	// LLMDuration tracks LLM inference latency on the agent side.
	LLMDuration metric.Float64Histogram

	// DelegationDuration tracks how long a sub-agent takes to complete a
	// delegated task.
	DelegationDuration metric.Float64Histogram

	// --- Counters ---

	// ToolCalls counts tool invocations. Use with attributes:
	//   attribute.String("tool", ...), attribute.String("status", ...)
	ToolCalls metric.Int64Counter

	// UpstreamRequests counts REST calls to the managed service. Use with
	// attributes:
	//   attribute.String("service", ...), attribute.String("status", ...)
	UpstreamRequests metric.Int64Counter

	// ProviderRequests counts LLM provider API calls. Use with attributes:
	//   attribute.String("provider", ...), attribute.String("status", ...)
	ProviderRequests metric.Int64Counter

	// --- Error counters ---

	// ProviderErrors counts LLM provider errors. Use with attribute:
	//   attribute.String("provider", ...)
	ProviderErrors metric.Int64Counter

	// --- Gauges ---

	// ActiveRequests tracks the number of in-flight HTTP requests.
	ActiveRequests metric.Int64UpDownCounter

	// ActiveRuns tracks the number of in-flight supervisor runs.
	ActiveRuns metric.Int64UpDownCounter

	// --- HTTP middleware ---

	// HTTPRequestDuration tracks HTTP request processing time. Use with attributes:
	//   attribute.String("method", ...), attribute.String("path", ...)
	HTTPRequestDuration metric.Float64Histogram
}

// latencyBuckets defines histogram bucket boundaries (in seconds) covering
// the span from a fast local tool call to a slow upstream library scan.
var latencyBuckets = []float64{
	0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	// Histograms.
	if met.ToolCallDuration, err = m.Float64Histogram("arrmcp.tool.duration",
		metric.WithDescription("Latency of MCP tool dispatch."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.LLMDuration, err = m.Float64Histogram("arrmcp.llm.duration",
		metric.WithDescription("Latency of LLM inference."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.DelegationDuration, err = m.Float64Histogram("arrmcp.delegation.duration",
		metric.WithDescription("Latency of delegated sub-agent tasks."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	// Counters.
	if met.ToolCalls, err = m.Int64Counter("arrmcp.tool.calls",
		metric.WithDescription("Total tool invocations by tool name and status."),
	); err != nil {
		return nil, err
	}
	if met.UpstreamRequests, err = m.Int64Counter("arrmcp.upstream.requests",
		metric.WithDescription("Total upstream REST requests by service and status class."),
	); err != nil {
		return nil, err
	}
	if met.ProviderRequests, err = m.Int64Counter("arrmcp.provider.requests",
		metric.WithDescription("Total LLM provider requests by provider and status."),
	); err != nil {
		return nil, err
	}

	// Error counters.
	if met.ProviderErrors, err = m.Int64Counter("arrmcp.provider.errors",
		metric.WithDescription("Total LLM provider errors by provider."),
	); err != nil {
		return nil, err
	}

	// Gauges (UpDownCounters).
	if met.ActiveRequests, err = m.Int64UpDownCounter("arrmcp.http.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests."),
	); err != nil {
		return nil, err
	}
	if met.ActiveRuns, err = m.Int64UpDownCounter("arrmcp.agent.active_runs",
		metric.WithDescription("Number of in-flight supervisor runs."),
	); err != nil {
		return nil, err
	}

	// HTTP middleware histogram.
	if met.HTTPRequestDuration, err = m.Float64Histogram("arrmcp.http.request.duration",
		metric.WithDescription("HTTP request latency by method and path."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
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

// Attr is a convenience alias for [attribute.String] to reduce verbosity at
// call sites.
func Attr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// RecordToolCall records one tool dispatch: the duration histogram sample and
// the invocation counter, both tagged with the tool name and outcome.
func (m *Metrics) RecordToolCall(ctx context.Context, tool string, d time.Duration, isError bool) {
	status := "ok"
	if isError {
		status = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("status", status),
	)
	m.ToolCallDuration.Record(ctx, d.Seconds(), attrs)
	m.ToolCalls.Add(ctx, 1, attrs)
}

// RecordUpstreamRequest records one REST round trip to the managed service.
// The HTTP status is collapsed to its class ("2xx", "4xx", ...); status 0
// means the request never completed.
func (m *Metrics) RecordUpstreamRequest(ctx context.Context, service string, status int) {
	class := "error"
	if status > 0 {
		class = fmt.Sprintf("%dxx", status/100)
	}
	m.UpstreamRequests.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("service", service),
			attribute.String("status", class),
		),
	)
}

// RecordProviderRequest records an LLM provider call with its outcome.
func (m *Metrics) RecordProviderRequest(ctx context.Context, provider, status string) {
	m.ProviderRequests.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("provider", provider),
			attribute.String("status", status),
		),
	)
}

// RecordProviderError records an LLM provider failure.
func (m *Metrics) RecordProviderError(ctx context.Context, provider string) {
	m.ProviderErrors.Add(ctx, 1,
		metric.WithAttributes(attribute.String("provider", provider)),
	)
}
