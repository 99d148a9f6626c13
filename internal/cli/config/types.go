// Package config provides configuration management for the LeapPrep CLI.
// Values are merged from defaults, an optional leapprep.yaml, LEAPPREP_
// environment variables, and command-line flags, in that order.
package config

// Defaults.
const (
	DefaultHistoryFile = ".leapprep/history.db"
	DefaultDelimiter   = ","
	DefaultOutput      = "auto"
)

// DefaultNullValues are the markers treated as null when loading data.
func DefaultNullValues() []string {
	return []string{"", "NA", "NaN", "null"}
}

// Config holds all CLI configuration options.
type Config struct {
	// Delimiter is the field separator for data files.
	Delimiter string `koanf:"delimiter"`
	// NullValues are the markers treated as null on load.
	NullValues []string `koanf:"null_values"`
	// HistoryPath is the path to the SQLite operation-history database.
	HistoryPath string `koanf:"history"`
	// OutputFormat selects the renderer mode (auto|table|csv|json).
	OutputFormat string `koanf:"output"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Delimiter:    DefaultDelimiter,
		NullValues:   DefaultNullValues(),
		HistoryPath:  DefaultHistoryFile,
		OutputFormat: DefaultOutput,
	}
}
