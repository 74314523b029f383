package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestNewFanoutHandlerCollapses(t *testing.T) {
	if _, ok := newFanoutHandler(nil, nil).(NoopHandler); !ok {
		t.Error("expected NoopHandler when every handler is nil")
	}

	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)
	if h := newFanoutHandler(nil, inner, nil); h != inner {
		t.Error("expected the single non-nil handler to be returned unwrapped")
	}
}

func TestFanoutHandlerEnabled(t *testing.T) {
	var warnBuf, debugBuf bytes.Buffer
	warn := slog.NewJSONHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn})
	debug := slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug})

	if !TeeHandler(warn, debug).Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected fanout enabled for debug when one handler accepts it")
	}
	if TeeHandler(warn, warn).Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected fanout disabled for info when no handler accepts it")
	}
}

func TestFanoutHandlerRoutesByLevel(t *testing.T) {
	var infoBuf, debugBuf bytes.Buffer
	info := slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo})
	debug := slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug})

	logger := slog.New(TeeHandler(info, debug))
	logger.Debug("debug only")

	if infoBuf.Len() != 0 {
		t.Errorf("info handler received debug record: %s", infoBuf.String())
	}
	if debugBuf.Len() == 0 {
		t.Error("debug handler should receive debug records")
	}

	logger.Info("both", slog.String("attr", "value"))
	for name, buf := range map[string]*bytes.Buffer{"info": &infoBuf, "debug": &debugBuf} {
		if !bytes.Contains(buf.Bytes(), []byte(`"attr":"value"`)) {
			t.Errorf("%s handler missing attr: %s", name, buf.String())
		}
	}
}

func TestFanoutHandlerWithAttrsAndGroup(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	h := TeeHandler(slog.NewJSONHandler(&buf1, nil), slog.NewJSONHandler(&buf2, nil))

	logger := slog.New(h.WithAttrs([]slog.Attr{slog.String("key", "value")}).WithGroup("grp"))
	logger.Info("test", slog.Int("n", 1))

	for i, buf := range []*bytes.Buffer{&buf1, &buf2} {
		if !bytes.Contains(buf.Bytes(), []byte(`"key":"value"`)) {
			t.Errorf("buffer %d missing key attr: %s", i, buf.String())
		}
		if !bytes.Contains(buf.Bytes(), []byte(`"grp":{"n":1}`)) {
			t.Errorf("buffer %d missing group: %s", i, buf.String())
		}
	}
}
