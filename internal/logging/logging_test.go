package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := NopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("NopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("NopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(NopHandler); !ok {
		t.Error("NopHandler.WithAttrs() did not return NopHandler")
	}
	if _, ok := h.WithGroup("group").(NopHandler); !ok {
		t.Error("NopHandler.WithGroup() did not return NopHandler")
	}
}

func TestOrNop(t *testing.T) {
	if _, ok := OrNop(nil).Handler().(NopHandler); !ok {
		t.Error("OrNop(nil) is not silent")
	}
	l := slog.Default()
	if OrNop(l) != l {
		t.Error("OrNop(l) did not return l")
	}
}
