// Package logger provides a small leveled console logger with
// timestamped, colorized lines routed to stdout or stderr by severity.
//
// # Severities
//
// Eight severities exist, each with a level, a stream and a color:
//
//	fatal    6  stderr  bright red background
//	error    5  stderr  red
//	warn     4  stderr  yellow
//	info     3  stdout  cyan
//	log      3  stdout  no color
//	success  3  stdout  green
//	debug    2  stdout  light magenta
//	trace    1  stdout  dark gray
//
// A call is written when its level is at least the configured threshold, so
// info, log and success are always enabled or disabled together. Fatal only
// logs; it never exits the process.
//
// # Output Format
//
//	<ISO-8601 date> <SEVERITY> <color><message><reset>\n
//
// The date, severity label and color codes can each be turned off.
//
// # Configuration
//
// The package-level functions use a logger configured once, at program start,
// from the environment:
//
//	CHROMA_LOGGER_DISABLE_DATE_FORMAT=true      omit the timestamp
//	CHROMA_LOGGER_DISABLE_SEVERITY_FORMAT=true  omit the severity label
//	CHROMA_LOGGER_DISABLE_COLOR=true            omit ANSI codes
//	CHROMA_LOGGER_SEVERITY=warn                 minimum severity, or "disable"
//
// Only "true" and "1" disable a feature. An unknown severity logs everything.
// Changing the environment later has no effect.
//
// # Usage
//
// Use the package-level functions:
//
//	logger.Info("server started on port %d", 8080)
//	logger.Error(err, "while loading", path)
//	logger.Debug(map[string]int{"retries": 3})
//
// Or build a logger with an explicit configuration:
//
//	l := logger.New(logger.Config{Threshold: logger.WarnLevel})
//	l.Warn("disk at %d%%", 91)
//
// Messages follow Format: a leading string may hold %s, %d, %i, %f, %j, %o,
// %O and %c placeholders, and remaining arguments are appended separated by
// spaces.
package logger
