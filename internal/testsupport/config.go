package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"langprep/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config rooted in a per-test temp directory and
// applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	builder := &configBuilder{
		t:       t,
		baseDir: t.TempDir(),
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithLogFile enables the JSON log file under the test's temp directory.
func WithLogFile() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.File = filepath.Join(b.baseDir, "logs", "langprep.log")
	}
}

// WithLogLevel sets logging.level.
func WithLogLevel(level string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Level = level
	}
}

// WithPreprocess lets a test flip individual pipeline steps.
func WithPreprocess(fn func(*config.Preprocess)) ConfigOption {
	return func(b *configBuilder) {
		fn(&b.cfg.Preprocess)
	}
}

// WithMaxInputBytes sets input.max_bytes.
func WithMaxInputBytes(limit int64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Input.MaxBytes = limit
	}
}

// WriteConfig marshals cfg to a TOML file in a fresh temp directory and
// returns its path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "langprep.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// IsolateHome points HOME and the working directory at a temp dir and clears
// LANGPREP_* overrides so no user configuration leaks into a test.
func IsolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LANGPREP_LOG_LEVEL", "")
	t.Setenv("LANGPREP_OUTPUT_FORMAT", "")
	t.Chdir(home)
	return home
}
