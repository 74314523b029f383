package config

const (
	defaultConfigPath    = "~/.config/langprep/config.toml"
	projectConfigName    = "langprep.toml"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultOutputFormat  = "auto"
	defaultOutputTop     = 20
	defaultInputMaxBytes = 16 << 20
)

// MaxInputBytes is the largest accepted input.max_bytes. Inputs are read
// whole into memory.
const MaxInputBytes = 1 << 30

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Preprocess: Preprocess{
			ScrubURLs:   true,
			ScrubEmails: true,
			ScriptBias:  true,
			Normalize:   true,
			WidthFold:   true,
		},
		Input: Input{
			MaxBytes: defaultInputMaxBytes,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Top:    defaultOutputTop,
		},
	}
}
