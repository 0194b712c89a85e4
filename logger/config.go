package logger

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by ConfigFromEnv.
const EnvPrefix = "CHROMA_LOGGER"

// Config holds the resolved formatting and filtering settings.
// A Logger copies it once in New and never changes it afterwards.
type Config struct {
	// Color wraps the message body in the severity's ANSI color.
	// Default: true
	Color bool
	// Date prefixes each line with an ISO-8601 UTC timestamp.
	// Default: true
	Date bool
	// SeverityLabel prefixes each line with the uppercase severity name.
	// Default: true
	SeverityLabel bool
	// Threshold is the minimum level emitted. DisableLevel silences everything.
	// Default: TraceLevel
	Threshold Level
}

// DefaultConfig returns the permissive defaults: everything on, nothing filtered.
func DefaultConfig() Config {
	return Config{
		Color:         true,
		Date:          true,
		SeverityLabel: true,
		Threshold:     TraceLevel,
	}
}

// envSettings mirrors the raw environment. Values stay strings so that only
// the exact spellings "true" and "1" count as set.
type envSettings struct {
	DisableDateFormat     string `split_words:"true"`
	DisableSeverityFormat string `split_words:"true"`
	DisableColor          string `split_words:"true"`
	Severity              string
}

// ConfigFromEnv resolves a Config from the CHROMA_LOGGER_* variables:
//
//	CHROMA_LOGGER_DISABLE_DATE_FORMAT      "true" or "1" omits the timestamp
//	CHROMA_LOGGER_DISABLE_SEVERITY_FORMAT  "true" or "1" omits the label
//	CHROMA_LOGGER_DISABLE_COLOR            "true" or "1" omits ANSI codes
//	CHROMA_LOGGER_SEVERITY                 minimum severity name, or "disable"
//
// Unrecognised values fall back to DefaultConfig silently.
func ConfigFromEnv() Config {
	var env envSettings
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return DefaultConfig()
	}
	return env.resolve()
}

func (e envSettings) resolve() Config {
	cfg := DefaultConfig()
	cfg.Date = !isSet(e.DisableDateFormat)
	cfg.SeverityLabel = !isSet(e.DisableSeverityFormat)
	cfg.Color = !isSet(e.DisableColor)
	if level, ok := ParseLevel(e.Severity); ok {
		cfg.Threshold = level
	}
	return cfg
}

func isSet(v string) bool {
	return v == "true" || v == "1"
}
