package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"langprep/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// Writer receives formatted records; stderr when nil.
	Writer          io.Writer
	ComponentLevels map[string]string
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}
	handler, err := buildHandler(opts.Format, writer, parseLevel(opts.Level), parseComponentLevels(opts.ComponentLevels))
	if err != nil {
		return nil, err
	}
	return slog.New(handler), nil
}

// NewFromConfig creates a logger from the [logging] section. Console output
// goes to console (stderr when nil); a configured log file additionally
// receives JSON lines. The returned closer releases the log file and must be
// called once the logger is no longer used.
func NewFromConfig(cfg *config.Config, console io.Writer) (*slog.Logger, io.Closer, error) {
	if cfg == nil {
		logger, err := New(Options{Level: "info", Format: "console", Writer: console})
		return logger, nopCloser{}, err
	}

	consoleLogger, err := New(Options{
		Level:           cfg.Logging.Level,
		Format:          cfg.Logging.Format,
		Writer:          console,
		ComponentLevels: cfg.Logging.ComponentLevels,
	})
	if err != nil {
		return nil, nil, err
	}

	path := strings.TrimSpace(cfg.Logging.File)
	if path == "" {
		return consoleLogger, nopCloser{}, nil
	}
	file, err := openLogFile(path)
	if err != nil {
		return nil, nil, err
	}
	fileLogger, err := New(Options{
		Level:           cfg.Logging.Level,
		Format:          "json",
		Writer:          file,
		ComponentLevels: cfg.Logging.ComponentLevels,
	})
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	return slog.New(TeeHandler(consoleLogger.Handler(), fileLogger.Handler())), file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func buildHandler(format string, w io.Writer, level slog.Level, overrides map[string]slog.Level) (slog.Handler, error) {
	// The format handler admits the most verbose level any component needs;
	// the component handler then enforces the real per-logger minimum.
	floor := level
	for _, override := range overrides {
		if override < floor {
			floor = override
		}
	}
	addSource := floor <= slog.LevelDebug

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		handler = newJSONHandler(w, floor, addSource)
	case "console", "":
		handler = newPrettyHandler(w, floor, addSource)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", format)
	}
	return newComponentLevelHandler(handler, level, overrides), nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseComponentLevels(levels map[string]string) map[string]slog.Level {
	if len(levels) == 0 {
		return nil
	}
	out := make(map[string]slog.Level, len(levels))
	for component, level := range levels {
		component = strings.ToLower(strings.TrimSpace(component))
		if component == "" {
			continue
		}
		out[component] = parseLevel(level)
	}
	return out
}

func openLogFile(path string) (*os.File, error) {
	if err := ensureLogDir(path); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return file, nil
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure log directory: %w", err)
	}
	return nil
}
