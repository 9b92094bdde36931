package log_test

import (
	"context"
	"testing"

	"tasks-timeline/pkg/log"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{"Development console", log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true}},
		{"Production json", log.ZapConfig{Level: "info", Mode: "production", Encoding: "json"}},
		{"Unknown level falls back", log.ZapConfig{Level: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatal("expected logger")
			}
			l.Infof(context.Background(), "hello %s", "world")
		})
	}
}

func TestTraceID(t *testing.T) {
	ctx := log.WithTraceID(context.Background(), "abc-123")
	if got := log.TraceID(ctx); got != "abc-123" {
		t.Errorf("expected trace id abc-123, got %q", got)
	}
	if got := log.TraceID(context.Background()); got != "" {
		t.Errorf("expected empty trace id, got %q", got)
	}

	// Logging with a traced context must not panic.
	log.NewNop().Warn(ctx, "traced")
}
