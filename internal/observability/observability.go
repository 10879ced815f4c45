// Package observability wires logging, tracing, and metrics for the engine.
package observability

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config holds the observability endpoints and environment.
type Config struct {
	ServiceName     string
	Environment     string
	MetricsAddress  string
	OTLPEndpoint    string
	OTLPInsecure    bool
	TraceSampleRate float64
}

// Observability bundles the logger, tracer, and metrics registry that every
// module receives at construction.
type Observability struct {
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Registry *prometheus.Registry

	tracerProvider *sdktrace.TracerProvider
	metricsServer  *http.Server
}

// Init builds the observability stack. When no OTLP endpoint is configured
// the tracer is a noop; when no metrics address is configured the metrics
// HTTP listener is skipped.
func Init(ctx context.Context, cfg Config) (*Observability, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(
		slog.String("service", cfg.ServiceName),
		slog.String("env", cfg.Environment),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	obs := &Observability{
		Logger:   logger,
		Tracer:   noop.NewTracerProvider().Tracer(cfg.ServiceName),
		Registry: registry,
	}

	if cfg.OTLPEndpoint != "" {
		opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint)}
		if cfg.OTLPInsecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		}
		exporter, err := otlptracegrpc.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
		}

		res, err := resource.New(ctx,
			resource.WithAttributes(
				semconv.ServiceName(cfg.ServiceName),
				semconv.DeploymentEnvironment(cfg.Environment),
			),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to build otel resource: %w", err)
		}

		sampleRate := cfg.TraceSampleRate
		if sampleRate <= 0 {
			sampleRate = 1.0
		}

		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRate))),
		)
		otel.SetTracerProvider(tp)

		obs.tracerProvider = tp
		obs.Tracer = tp.Tracer(cfg.ServiceName)
	}

	if cfg.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		obs.metricsServer = &http.Server{
			Addr:              cfg.MetricsAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := obs.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server stopped", slog.Any("error", err))
			}
		}()
	}

	return obs, nil
}

// Shutdown flushes traces and stops the metrics listener.
func (o *Observability) Shutdown(ctx context.Context) error {
	var firstErr error
	if o.metricsServer != nil {
		if err := o.metricsServer.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if o.tracerProvider != nil {
		if err := o.tracerProvider.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
