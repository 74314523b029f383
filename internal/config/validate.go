package config

import (
	"fmt"
	"slices"
)

var (
	logFormats    = []string{"console", "json"}
	logLevels     = []string{"debug", "info", "warn", "error"}
	outputFormats = []string{"auto", "table", "plain", "json"}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if c.Input.MaxBytes <= 0 || c.Input.MaxBytes > MaxInputBytes {
		return fmt.Errorf("input.max_bytes must be between 1 and %d, got %d", MaxInputBytes, c.Input.MaxBytes)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !slices.Contains(logFormats, c.Logging.Format) {
		return fmt.Errorf("logging.format must be one of %v, got %q", logFormats, c.Logging.Format)
	}
	if !slices.Contains(logLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of %v, got %q", logLevels, c.Logging.Level)
	}
	for component, level := range c.Logging.ComponentLevels {
		if !slices.Contains(logLevels, level) {
			return fmt.Errorf("logging.component_levels.%s must be one of %v, got %q", component, logLevels, level)
		}
	}
	return nil
}

func (c *Config) validateOutput() error {
	if !slices.Contains(outputFormats, c.Output.Format) {
		return fmt.Errorf("output.format must be one of %v, got %q", outputFormats, c.Output.Format)
	}
	if c.Output.Top <= 0 {
		return fmt.Errorf("output.top must be positive")
	}
	return nil
}
