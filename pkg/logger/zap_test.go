package logger_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/wb_tickets/pkg/ctxmeta"
	"github.com/Gunvolt24/wb_tickets/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_ContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := logger.FromZap(zap.New(core))

	ctx := ctxmeta.WithRequestID(context.Background(), "req-1")
	ctx = ctxmeta.WithAccountID(ctx, 42)

	l.Warnf(ctx, "purchase rejected: %s", "infants exceed adults")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.WarnLevel || e.Message != "purchase rejected: infants exceed adults" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	fields := e.ContextMap()
	if fields["request_id"] != "req-1" {
		t.Fatalf("request_id: got %v", fields["request_id"])
	}
	if fields["account_id"] != int64(42) {
		t.Fatalf("account_id: got %v (%T)", fields["account_id"], fields["account_id"])
	}
}

func TestZapLogger_NoContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := logger.FromZap(zap.New(core))

	l.Infof(context.Background(), "started")
	l.Errorf(context.Background(), "failed: %v", "boom")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(entries))
	}
	if len(entries[0].Context) != 0 {
		t.Fatalf("unexpected fields: %v", entries[0].ContextMap())
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Fatalf("want error level, got %v", entries[1].Level)
	}
}

func TestNewZapLogger_Modes(t *testing.T) {
	for _, prod := range []bool{false, true} {
		l, cleanup, err := logger.NewZapLogger(prod)
		if err != nil || l == nil || cleanup == nil {
			t.Fatalf("prod=%v: logger=%v err=%v", prod, l, err)
		}
		if l.Base() == nil {
			t.Fatalf("prod=%v: base logger is nil", prod)
		}
	}
}
