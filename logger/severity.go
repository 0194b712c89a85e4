package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Level orders severities for filtering. Several severities may share a level.
type Level int

const (
	// TraceLevel is the most verbose level and the default threshold.
	TraceLevel Level = 1
	// DebugLevel is for diagnostic detail.
	DebugLevel Level = 2
	// InfoLevel is shared by info, log and success.
	InfoLevel Level = 3
	// WarnLevel is for recoverable problems.
	WarnLevel Level = 4
	// ErrorLevel is for failed operations.
	ErrorLevel Level = 5
	// FatalLevel is the most severe level. Logging at it does not exit.
	FatalLevel Level = 6
	// DisableLevel is a threshold only; no severity reaches it.
	DisableLevel Level = 1000
)

// Stream identifies the standard stream a severity writes to.
type Stream int

const (
	// Stdout is standard output.
	Stdout Stream = iota
	// Stderr is standard error.
	Stderr
)

func (s Stream) String() string {
	if s == Stderr {
		return "stderr"
	}
	return "stdout"
}

// bgDefault resets the background color; fatih/color has no constant for it.
const bgDefault color.Attribute = 49

const resetCode = "\x1b[0m"

// Severity is a fixed, emittable log severity.
type Severity struct {
	Name   string
	Level  Level
	Stream Stream

	attr  color.Attribute
	color *color.Color
}

// Label returns the uppercase name printed in front of the message.
func (s Severity) Label() string {
	return strings.ToUpper(s.Name)
}

// ColorCode returns the ANSI sequence opening the colored message body.
func (s Severity) ColorCode() string {
	return fmt.Sprintf("\x1b[%dm", s.attr)
}

func newSeverity(name string, level Level, stream Stream, attr color.Attribute) Severity {
	c := color.New(attr)
	// color.NoColor is decided from the terminal; the config flag decides here.
	c.EnableColor()
	return Severity{Name: name, Level: level, Stream: stream, attr: attr, color: c}
}

var (
	fatalSeverity   = newSeverity("fatal", FatalLevel, Stderr, color.BgHiRed)
	errorSeverity   = newSeverity("error", ErrorLevel, Stderr, color.FgRed)
	warnSeverity    = newSeverity("warn", WarnLevel, Stderr, color.FgYellow)
	infoSeverity    = newSeverity("info", InfoLevel, Stdout, color.FgCyan)
	logSeverity     = newSeverity("log", InfoLevel, Stdout, bgDefault)
	successSeverity = newSeverity("success", InfoLevel, Stdout, color.FgGreen)
	debugSeverity   = newSeverity("debug", DebugLevel, Stdout, color.FgHiMagenta)
	traceSeverity   = newSeverity("trace", TraceLevel, Stdout, color.FgHiBlack)
)

var severities = []Severity{
	fatalSeverity,
	errorSeverity,
	warnSeverity,
	infoSeverity,
	logSeverity,
	successSeverity,
	debugSeverity,
	traceSeverity,
}

// Severities returns the emittable severities, most severe first.
func Severities() []Severity {
	out := make([]Severity, len(severities))
	copy(out, severities)
	return out
}

// LookupSeverity returns the severity with the exact given name.
func LookupSeverity(name string) (Severity, bool) {
	for _, s := range severities {
		if s.Name == name {
			return s, true
		}
	}
	return Severity{}, false
}

// ParseLevel maps a severity name, or "disable", to its level.
// Matching is exact and case-sensitive.
func ParseLevel(name string) (Level, bool) {
	if name == "disable" {
		return DisableLevel, true
	}
	if s, ok := LookupSeverity(name); ok {
		return s.Level, true
	}
	return 0, false
}
