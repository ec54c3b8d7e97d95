// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Config holds the optional settings for a disemvowel run. None of them
// affect which arguments are accepted; they only tune logging and the
// permissions of newly created output files.
type Config struct {
	// LogLevel is the minimum level written to stderr: debug, info, warn, or
	// error (default error, which keeps successful runs silent).
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`

	// LogFormat selects the stderr log encoding: text or json (default text).
	LogFormat string `json:"log_format" yaml:"log_format" mapstructure:"log_format"`

	// FileMode is the octal permission for output files that do not exist yet
	// (default "0644"). Existing output files keep their permissions.
	FileMode string `json:"file_mode" yaml:"file_mode" mapstructure:"file_mode"`
}
