package config_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"langprep/internal/config"
	"langprep/internal/testsupport"
)

func TestLoadDefaultConfig(t *testing.T) {
	home := testsupport.IsolateHome(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(home, ".config", "langprep", "config.toml")
	if resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}

	def := config.Default()
	if cfg.Logging.Format != def.Logging.Format || cfg.Logging.Level != def.Logging.Level {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Preprocess != def.Preprocess {
		t.Fatalf("unexpected preprocess defaults: %+v", cfg.Preprocess)
	}
	if !cfg.Preprocess.ScrubURLs || !cfg.Preprocess.ScriptBias || !cfg.Preprocess.Normalize {
		t.Fatalf("expected pipeline steps enabled by default: %+v", cfg.Preprocess)
	}
	if cfg.Output.Format != "auto" || cfg.Output.Top != 20 {
		t.Fatalf("unexpected output defaults: %+v", cfg.Output)
	}
	if cfg.Input.MaxBytes != 16<<20 {
		t.Fatalf("unexpected input.max_bytes: %d", cfg.Input.MaxBytes)
	}
}

func TestLoadCustomPathExpandsLogFile(t *testing.T) {
	home := testsupport.IsolateHome(t)
	configPath := filepath.Join(t.TempDir(), "langprep.toml")

	payload := map[string]any{
		"logging": map[string]any{
			"format": " JSON ",
			"level":  "Debug",
			"file":   "~/logs/langprep.log",
			"component_levels": map[string]any{
				" CodeSeq ": "WARN",
			},
		},
		"preprocess": map[string]any{
			"scrub_urls":  false,
			"script_bias": false,
		},
		"output": map[string]any{
			"format": "json",
			"top":    5,
		},
	}
	data, err := toml.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected existing config at %q, got %q (exists=%v)", configPath, resolved, exists)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging values, got %+v", cfg.Logging)
	}
	if want := filepath.Join(home, "logs", "langprep.log"); cfg.Logging.File != want {
		t.Fatalf("unexpected log file: got %q want %q", cfg.Logging.File, want)
	}
	if got := cfg.Logging.ComponentLevels["codeseq"]; got != "warn" {
		t.Fatalf("expected component level warn, got %q (%v)", got, cfg.Logging.ComponentLevels)
	}
	if cfg.Preprocess.ScrubURLs || cfg.Preprocess.ScriptBias {
		t.Fatalf("expected disabled steps, got %+v", cfg.Preprocess)
	}
	if !cfg.Preprocess.ScrubEmails || !cfg.Preprocess.Normalize {
		t.Fatalf("expected unspecified steps to keep defaults, got %+v", cfg.Preprocess)
	}
	if cfg.Output.Format != "json" || cfg.Output.Top != 5 {
		t.Fatalf("unexpected output config: %+v", cfg.Output)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories returned error: %v", err)
	}
	if info, err := os.Stat(filepath.Join(home, "logs")); err != nil || !info.IsDir() {
		t.Fatalf("expected log directory to exist: %v", err)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	testsupport.IsolateHome(t)
	missing := filepath.Join(t.TempDir(), "absent.toml")

	cfg, resolved, exists, err := config.Load(missing)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected missing config to report exists=false")
	}
	if resolved != missing {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if cfg.Output.Top != config.Default().Output.Top {
		t.Fatalf("expected defaults, got %+v", cfg.Output)
	}
}

func TestEnvironmentFallbacks(t *testing.T) {
	testsupport.IsolateHome(t)
	t.Setenv("LANGPREP_LOG_LEVEL", "WARN")
	t.Setenv("LANGPREP_OUTPUT_FORMAT", "plain")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected level from env, got %q", cfg.Logging.Level)
	}
	if cfg.Output.Format != "plain" {
		t.Fatalf("expected output format from env, got %q", cfg.Output.Format)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	testsupport.IsolateHome(t)
	configPath := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(configPath, []byte("[logging\nformat = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"log format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"log level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"component level", func(c *config.Config) {
			c.Logging.ComponentLevels = map[string]string{"codeseq": "loud"}
		}, "logging.component_levels.codeseq"},
		{"output format", func(c *config.Config) { c.Output.Format = "yaml" }, "output.format"},
		{"output top", func(c *config.Config) { c.Output.Top = 0 }, "output.top"},
		{"input max", func(c *config.Config) { c.Input.MaxBytes = -1 }, "input.max_bytes"},
		{"input max overflows read limit", func(c *config.Config) { c.Input.MaxBytes = math.MaxInt64 }, "input.max_bytes"},
		{"input max above cap", func(c *config.Config) { c.Input.MaxBytes = config.MaxInputBytes + 1 }, "input.max_bytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	cfg.Input.MaxBytes = config.MaxInputBytes
	if err := cfg.Validate(); err != nil {
		t.Fatalf("max_bytes at the cap should validate: %v", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	testsupport.IsolateHome(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	def := config.Default()
	if cfg.Preprocess != def.Preprocess || cfg.Output != def.Output || cfg.Input != def.Input {
		t.Fatalf("sample config diverges from defaults: %+v", cfg)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := testsupport.IsolateHome(t)
	got, err := config.ExpandPath("~/data/x.toml")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if want := filepath.Join(home, "data", "x.toml"); got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
	if got, _ := config.ExpandPath(""); got != "" {
		t.Fatalf("ExpandPath(\"\") = %q, want empty", got)
	}
}
