// Package config loads, normalizes, and validates langprep configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment fallbacks such as LANGPREP_LOG_LEVEL.
// The Config type gathers the logging, preprocessing, input, and output knobs
// the CLI needs so commands can build a pipeline from one value.
package config
