package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/Gunvolt24/wb_tickets/pkg/telemetry"
)

func TestClampRatio(t *testing.T) {
	cases := map[float64]float64{-1: 0, 0: 0, 0.25: 0.25, 1: 1, 3: 1}
	for in, want := range cases {
		if got := telemetry.ClampRatio(in); got != want {
			t.Fatalf("ClampRatio(%v): want %v, got %v", in, want, got)
		}
	}
}

func TestSetupTracing_ReturnsShutdown(t *testing.T) {
	// Экспортёр не подключается к коллектору до первой отправки.
	shutdown, err := telemetry.SetupTracing(context.Background(), "tickets-test", "127.0.0.1:1", 1)
	if err != nil {
		t.Fatalf("SetupTracing error: %v", err)
	}

	_, span := telemetry.Tracer().Start(context.Background(), "test")
	if !span.SpanContext().IsValid() {
		t.Fatalf("span must be recorded with sample ratio 1")
	}
	span.End()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = shutdown(ctx) // экспорт в недоступный коллектор может вернуть ошибку
}
