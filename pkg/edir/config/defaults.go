package config

// Default configuration values.
const (
	// DefaultEditor is used when nothing is configured and neither
	// VISUAL nor EDITOR is set.
	DefaultEditor = ""

	// DefaultHistoryRetentionDays is how long run records are kept
	// before `edir history clean` removes them.
	DefaultHistoryRetentionDays = 90

	// DefaultLogLevel is the default logging verbosity.
	DefaultLogLevel = "info"
)
