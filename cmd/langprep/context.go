package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"langprep/internal/codeseq"
	"langprep/internal/config"
	"langprep/internal/logging"
	"langprep/internal/normalize"
)

type globalFlags struct {
	config   string
	format   string
	logLevel string
}

type commandContext struct {
	flags *globalFlags
	runID string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	logCloser  io.Closer
	loggerErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags, runID: logging.NewRunID()}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if level := strings.ToLower(strings.TrimSpace(c.flags.logLevel)); level != "" {
			cfg.Logging.Level = level
		}
		if format := strings.ToLower(strings.TrimSpace(c.flags.format)); format != "" {
			cfg.Output.Format = format
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config, c.configPath, c.configSeen = cfg, path, exists
	})
	return c.config, c.configErr
}

// commandLogger returns the process logger tagged with the command name. The
// process logger carries the run id stored on the command context.
func (c *commandContext) commandLogger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	c.loggerOnce.Do(func() {
		var logger *slog.Logger
		logger, c.logCloser, c.loggerErr = logging.NewFromConfig(cfg, cmd.ErrOrStderr())
		if c.loggerErr == nil {
			c.logger = logging.WithContext(cmd.Context(), logger)
		}
	})
	if c.loggerErr != nil {
		return nil, fmt.Errorf("configure logging: %w", c.loggerErr)
	}
	return logging.NewComponentLogger(c.logger, "cli").With(logging.String(logging.FieldCommand, cmd.Name())), nil
}

// close releases the log file opened for this invocation, if any.
func (c *commandContext) close() error {
	if c.logCloser == nil {
		return nil
	}
	err := c.logCloser.Close()
	c.logCloser = nil
	return err
}

// pipelineOptions maps the [preprocess] section onto codeseq options.
func (c *commandContext) pipelineOptions(logger *slog.Logger) []codeseq.Option {
	cfg := c.config
	opts := []codeseq.Option{
		codeseq.WithLogger(logger),
		codeseq.WithScrubOptions(codeseq.ScrubOptions{
			URLs:   cfg.Preprocess.ScrubURLs,
			Emails: cfg.Preprocess.ScrubEmails,
		}),
	}
	if !cfg.Preprocess.ScriptBias {
		opts = append(opts, codeseq.WithoutScriptBias())
	}
	switch {
	case !cfg.Preprocess.Normalize:
		opts = append(opts, codeseq.WithNormalizer(normalize.Identity{}))
	case !cfg.Preprocess.WidthFold:
		opts = append(opts, codeseq.WithNormalizer(normalize.NewCanonical(normalize.WithWidthFold(false))))
	}
	return opts
}

// outputFormat resolves "auto" to table on a terminal and plain otherwise.
func (c *commandContext) outputFormat(out io.Writer) string {
	format := "auto"
	if c.config != nil {
		format = c.config.Output.Format
	}
	if format == "auto" {
		if isTerminal(out) {
			return "table"
		}
		return "plain"
	}
	return format
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
