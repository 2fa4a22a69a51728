package telemetry

import (
	"context"
	"testing"
)

func TestNoopTracerDoesNotRecord(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "test")
	defer span.End()

	if span.IsRecording() {
		t.Error("NoopTracer span should not record")
	}
}

func TestTracerWithoutSetup(t *testing.T) {
	tracer := Tracer("world")
	if tracer == nil {
		t.Fatal("Tracer() returned nil")
	}

	_, span := tracer.Start(context.Background(), "dungeon.generate")
	span.End()
}

func TestSessionAttributes(t *testing.T) {
	attrs := SessionAttributes("abc", 42, 10, 10)

	got := map[string]string{}
	for _, kv := range attrs {
		got[string(kv.Key)] = kv.Value.Emit()
	}

	want := map[string]string{
		"session.id":     "abc",
		"session.seed":   "42",
		"dungeon.width":  "10",
		"dungeon.height": "10",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("SessionAttributes()[%s] = %q, want %q", k, got[k], v)
		}
	}
}
