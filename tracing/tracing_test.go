package tracing

import (
	"context"
	"testing"

	"kr.dev/diff"
)

func TestConfigFromEnv(t *testing.T) {
	ctx := context.Background()
	t.Setenv("OTEL_ENABLED", "false")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "http/protobuf")
	t.Setenv("OTEL_TRACE_SAMPLE_RATE", "0.25")
	cfg, err := ConfigFromEnv(ctx)
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, Config{
		Protocol:       "http",
		ServiceName:    "ethcall",
		ServiceVersion: "unknown",
		SampleRate:     0.25,
	}, cfg)
}

func TestConfigFromEnv_Invalid(t *testing.T) {
	ctx := context.Background()
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "carrier-pigeon")
	_, err := ConfigFromEnv(ctx)
	if err == nil {
		t.Errorf("expected protocol error")
	}

	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc")
	t.Setenv("OTEL_TRACE_SAMPLE_RATE", "2")
	_, err = ConfigFromEnv(ctx)
	if err == nil {
		t.Errorf("expected sample rate error")
	}
}

func TestInit_Disabled(t *testing.T) {
	ctx := context.Background()
	shutdown, err := Init(ctx, Config{})
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, nil, shutdown(ctx))
}

func TestInit_HTTP(t *testing.T) {
	ctx := context.Background()
	shutdown, err := Init(ctx, Config{
		Enabled:     true,
		Protocol:    "http",
		Endpoint:    "localhost:4318",
		ServiceName: "ethcall-test",
		SampleRate:  0,
		Insecure:    true,
	})
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, nil, shutdown(ctx))
}
