package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// isoLayout matches JavaScript's Date.prototype.toISOString.
const isoLayout = "2006-01-02T15:04:05.000Z"

// ErrUnknownSeverity is returned by Emit for names outside the severity table.
var ErrUnknownSeverity = errors.New("unknown severity")

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// Logger writes formatted lines to stdout or stderr depending on severity.
// Its configuration is fixed at construction. A Logger is safe for
// concurrent use; each line is written with a single Write call.
type Logger struct {
	cfg    Config
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time

	// mu serialises writes so lines from different goroutines never interleave.
	mu sync.Mutex
}

// Option customises a Logger built by New.
type Option func(*Logger)

// WithOutput replaces the standard streams. A nil writer keeps the default.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(l *Logger) {
		if stdout != nil {
			l.stdout = stdout
		}
		if stderr != nil {
			l.stderr = stderr
		}
	}
}

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}

// New returns a Logger using cfg.
func New(cfg Config, opts ...Option) *Logger {
	l := &Logger{
		cfg:    cfg,
		stdout: outStdout,
		stderr: outStderr,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Config returns the configuration the logger was built with.
func (l *Logger) Config() Config {
	return l.cfg
}

// Enabled reports whether a severity at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.cfg.Threshold
}

// Emit logs args at the severity with the given name. It returns an error
// wrapping ErrUnknownSeverity for an unknown name, and the write error if
// the stream rejects the line. A filtered call returns nil.
func (l *Logger) Emit(name string, args ...any) error {
	sev, ok := LookupSeverity(name)
	if !ok {
		return errors.Wrapf(ErrUnknownSeverity, "severity %q", name)
	}
	if err := l.write(sev, args...); err != nil {
		return errors.Wrapf(err, "write %s line to %s", sev.Name, sev.Stream)
	}
	return nil
}

func (l *Logger) write(sev Severity, args ...any) error {
	if !l.Enabled(sev.Level) {
		return nil
	}
	line := l.format(sev, Format(args...))

	l.mu.Lock()
	defer l.mu.Unlock()

	_, err := io.WriteString(l.output(sev.Stream), line)
	return err
}

func (l *Logger) format(sev Severity, body string) string {
	var b strings.Builder
	if l.cfg.Date {
		b.WriteString(l.now().UTC().Format(isoLayout))
		b.WriteByte(' ')
	}
	if l.cfg.SeverityLabel {
		b.WriteString(sev.Label())
		b.WriteByte(' ')
	}
	if l.cfg.Color {
		b.WriteString(sev.color.Sprint(body))
	} else {
		b.WriteString(body)
	}
	b.WriteByte('\n')
	return b.String()
}

func (l *Logger) output(s Stream) io.Writer {
	if s == Stderr {
		return l.stderr
	}
	return l.stdout
}

// Fatal logs at fatal level to stderr. It does not exit.
func (l *Logger) Fatal(args ...any) { _ = l.write(fatalSeverity, args...) }

// Error logs at error level to stderr.
func (l *Logger) Error(args ...any) { _ = l.write(errorSeverity, args...) }

// Warn logs at warn level to stderr.
func (l *Logger) Warn(args ...any) { _ = l.write(warnSeverity, args...) }

// Info logs at info level to stdout.
func (l *Logger) Info(args ...any) { _ = l.write(infoSeverity, args...) }

// Log logs at info level to stdout without a visible color.
func (l *Logger) Log(args ...any) { _ = l.write(logSeverity, args...) }

// Success logs at info level to stdout in green.
func (l *Logger) Success(args ...any) { _ = l.write(successSeverity, args...) }

// Debug logs at debug level to stdout.
func (l *Logger) Debug(args ...any) { _ = l.write(debugSeverity, args...) }

// Trace logs at trace level to stdout.
func (l *Logger) Trace(args ...any) { _ = l.write(traceSeverity, args...) }

// Api logs an HTTP API call with automatic severity selection based on status code.
// Status codes are mapped to severities: 5xx->error, 4xx->warn, anything else->info.
// The body is prefixed with the status code.
//
// Example:
//
//	l.Api(200, "api call successful")
//	l.Api(404, "resource not found")
//	l.Api(500, "internal server error")
func (l *Logger) Api(statusCode int, args ...any) {
	sev := statusCodeToSeverity(statusCode)
	if !l.Enabled(sev.Level) {
		return
	}
	body := fmt.Sprintf("[%d]", statusCode)
	if len(args) > 0 {
		body += " " + Format(args...)
	}
	_ = l.write(sev, body)
}

// statusCodeToSeverity maps HTTP status codes to severities.
// 1xx, 2xx, 3xx -> info, 4xx -> warn, 5xx -> error
func statusCodeToSeverity(code int) Severity {
	switch {
	case code >= 500:
		return errorSeverity
	case code >= 400:
		return warnSeverity
	default:
		return infoSeverity // 3xx redirects are informational, not warnings
	}
}

// --- Package-level logging (default logger) ---

// std is resolved from the environment once, during package initialisation.
var std = New(ConfigFromEnv())

// Default returns the package-level logger configured from CHROMA_LOGGER_*.
func Default() *Logger {
	return std
}

// Fatal logs to stderr through the default logger. It does not exit.
// Thread-safe for concurrent use.
func Fatal(args ...any) { std.Fatal(args...) }

// Error logs to stderr through the default logger.
// Thread-safe for concurrent use.
func Error(args ...any) { std.Error(args...) }

// Warn logs to stderr through the default logger.
// Thread-safe for concurrent use.
func Warn(args ...any) { std.Warn(args...) }

// Info logs to stdout through the default logger.
// Thread-safe for concurrent use.
func Info(args ...any) { std.Info(args...) }

// Log logs to stdout through the default logger.
// Thread-safe for concurrent use.
func Log(args ...any) { std.Log(args...) }

// Success logs to stdout through the default logger.
// Thread-safe for concurrent use.
func Success(args ...any) { std.Success(args...) }

// Debug logs to stdout through the default logger.
// Thread-safe for concurrent use.
func Debug(args ...any) { std.Debug(args...) }

// Trace logs to stdout through the default logger.
// Thread-safe for concurrent use.
func Trace(args ...any) { std.Trace(args...) }

// Api logs an HTTP status line through the default logger.
// Thread-safe for concurrent use.
func Api(statusCode int, args ...any) { std.Api(statusCode, args...) }
