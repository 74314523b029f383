package logging

import (
	"context"
	"log/slog"
	"strings"
)

// levelOverrideHandler enforces a minimum level while delegating output to the
// wrapped handler, which admits the most verbose level any component needs.
type levelOverrideHandler struct {
	next  slog.Handler
	level slog.Level
}

func newLevelOverrideHandler(next slog.Handler, level slog.Level) slog.Handler {
	if next == nil {
		return NoopHandler{}
	}
	return &levelOverrideHandler{next: next, level: level}
}

func (h *levelOverrideHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if level < h.level {
		return false
	}
	return h.next.Enabled(ctx, level)
}

func (h *levelOverrideHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level < h.level {
		return nil
	}
	return h.next.Handle(ctx, record)
}

func (h *levelOverrideHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelOverrideHandler{next: h.next.WithAttrs(attrs), level: h.level}
}

func (h *levelOverrideHandler) WithGroup(name string) slog.Handler {
	return &levelOverrideHandler{next: h.next.WithGroup(name), level: h.level}
}

// componentLevelHandler picks its minimum level from the component attribute
// attached through WithAttrs, falling back to the global level.
type componentLevelHandler struct {
	next   slog.Handler
	level  slog.Level
	global slog.Level
	levels map[string]slog.Level
}

func newComponentLevelHandler(next slog.Handler, global slog.Level, levels map[string]slog.Level) slog.Handler {
	if next == nil {
		return NoopHandler{}
	}
	if len(levels) == 0 {
		return newLevelOverrideHandler(next, global)
	}
	return &componentLevelHandler{next: next, level: global, global: global, levels: levels}
}

func (h *componentLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if level < h.level {
		return false
	}
	return h.next.Enabled(ctx, level)
}

func (h *componentLevelHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level < h.level {
		return nil
	}
	return h.next.Handle(ctx, record)
}

func (h *componentLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	level := h.level
	for _, attr := range attrs {
		if attr.Key != FieldComponent {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(attr.Value.Resolve().String()))
		if override, ok := h.levels[name]; ok {
			level = override
		} else {
			level = h.global
		}
	}
	return &componentLevelHandler{
		next:   h.next.WithAttrs(attrs),
		level:  level,
		global: h.global,
		levels: h.levels,
	}
}

func (h *componentLevelHandler) WithGroup(name string) slog.Handler {
	return &componentLevelHandler{
		next:   h.next.WithGroup(name),
		level:  h.level,
		global: h.global,
		levels: h.levels,
	}
}
