package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeInput()
	c.normalizeOutput()
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("LANGPREP_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if len(c.Logging.ComponentLevels) > 0 {
		levels := make(map[string]string, len(c.Logging.ComponentLevels))
		for component, level := range c.Logging.ComponentLevels {
			component = strings.ToLower(strings.TrimSpace(component))
			if component == "" {
				continue
			}
			levels[component] = strings.ToLower(strings.TrimSpace(level))
		}
		c.Logging.ComponentLevels = levels
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

func (c *Config) normalizeInput() {
	if c.Input.MaxBytes <= 0 {
		c.Input.MaxBytes = defaultInputMaxBytes
	}
}

func (c *Config) normalizeOutput() {
	if value, ok := os.LookupEnv("LANGPREP_OUTPUT_FORMAT"); ok && strings.TrimSpace(value) != "" {
		c.Output.Format = value
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	if c.Output.Top <= 0 {
		c.Output.Top = defaultOutputTop
	}
}
