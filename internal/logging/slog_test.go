package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dispatch", "event", "card_inserted")
	log.Info(ctx, "transition", "to", "pin_entry")
	log.Warn(ctx, "rejected", "reason", "invalid_pin")
	log.Error(ctx, "violation", "state", "idle")

	out := buf.String()
	tests := []struct {
		level string
		msg   string
		kv    string
	}{
		{"DEBUG", "dispatch", "event=card_inserted"},
		{"INFO", "transition", "to=pin_entry"},
		{"WARN", "rejected", "reason=invalid_pin"},
		{"ERROR", "violation", "state=idle"},
	}
	for _, tc := range tests {
		for _, want := range []string{"level=" + tc.level, "msg=" + tc.msg, tc.kv} {
			if !strings.Contains(out, want) {
				t.Fatalf("expected %q in output:\n%s", want, out)
			}
		}
	}
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("session", "abc", "atm", "lobby-1").Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	for _, s := range []string{"level=INFO", "msg=hello", "session=abc", "atm=lobby-1", "k=v"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}
