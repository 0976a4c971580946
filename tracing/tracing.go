// OpenTelemetry setup for the json rpc client
package tracing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sethvargo/go-envconfig"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

type Config struct {
	Enabled bool `env:"OTEL_ENABLED, default=false"`

	// Collector endpoint (eg "otel-collector.monitoring:4317").
	// When empty the exporter reads OTEL_EXPORTER_OTLP_ENDPOINT itself.
	Endpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	// "grpc", "http", or "http/protobuf"
	Protocol string `env:"OTEL_EXPORTER_OTLP_PROTOCOL, default=grpc"`

	ServiceName    string `env:"OTEL_SERVICE_NAME, default=ethcall"`
	ServiceVersion string `env:"OTEL_SERVICE_VERSION, default=unknown"`

	// Fraction of traces to sample, 0.0 to 1.0
	SampleRate float64 `env:"OTEL_TRACE_SAMPLE_RATE, default=1.0"`

	Insecure bool `env:"OTEL_EXPORTER_OTLP_INSECURE, default=false"`
}

func ConfigFromEnv(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading tracing config: %w", err)
	}
	return cfg, cfg.validate()
}

func (cfg *Config) validate() error {
	if cfg.Protocol == "http/protobuf" {
		cfg.Protocol = "http"
	}
	switch cfg.Protocol {
	case "grpc", "http":
	default:
		return fmt.Errorf("unsupported protocol: %s (use 'grpc' or 'http')", cfg.Protocol)
	}
	if cfg.SampleRate < 0 || cfg.SampleRate > 1 {
		return fmt.Errorf("sample rate must be within [0, 1]. got: %f", cfg.SampleRate)
	}
	return nil
}

// Installs a global tracer provider when cfg.Enabled.
// The returned func flushes and stops the provider.
func Init(ctx context.Context, cfg Config) (func(context.Context) error, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			attribute.String("service.namespace", "ethcall"),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var exporter sdktrace.SpanExporter
	switch cfg.Protocol {
	case "grpc":
		opts := []otlptracegrpc.Option{}
		if cfg.Endpoint != "" {
			opts = append(opts, otlptracegrpc.WithEndpoint(cfg.Endpoint))
		}
		if cfg.Insecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		}
		exporter, err = otlptracegrpc.New(ctx, opts...)
	case "http":
		opts := []otlptracehttp.Option{}
		if cfg.Endpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpoint(cfg.Endpoint))
		}
		if cfg.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		exporter, err = otlptracehttp.New(ctx, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("creating exporter: %w", err)
	}

	sampler := sdktrace.AlwaysSample()
	if cfg.SampleRate < 1.0 {
		sampler = sdktrace.TraceIDRatioBased(cfg.SampleRate)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	slog.DebugContext(ctx, "tracing-initialized",
		"endpoint", cfg.Endpoint,
		"protocol", cfg.Protocol,
		"sample_rate", cfg.SampleRate,
	)
	return tp.Shutdown, nil
}
