package logging

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapLogger(zap.New(core)), logs
}

func TestZapLogger_Levels(t *testing.T) {
	log, logs := newObservedLogger()
	ctx := context.Background()

	log.Debug(ctx, "debug msg")
	log.Info(ctx, "info msg")
	log.Warn(ctx, "warn msg")
	log.Error(ctx, "error msg")

	if got := logs.Len(); got != 4 {
		t.Fatalf("expected 4 entries, got %d", got)
	}

	levels := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range logs.All() {
		if e.Level != levels[i] {
			t.Fatalf("entry %d: expected level %v, got %v", i, levels[i], e.Level)
		}
	}
}

func TestZapLogger_WithAddsFields(t *testing.T) {
	log, logs := newObservedLogger()

	child := log.With("component", "profile")
	child.Info(context.Background(), "saved", "id", "42")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	found := false
	for _, f := range entries[0].Context {
		if f.Key == "component" && strings.Contains(f.String, "profile") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected field component=profile in %v", entries[0].Context)
	}
}
