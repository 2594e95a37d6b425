// Package logger provides the leveled logger used by the command line tools.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
)

// LogLevel is a logging threshold.
type LogLevel int8

const (
	// LogDebug logs everything.
	LogDebug LogLevel = iota
	// LogInfo logs informational messages, warnings and errors.
	LogInfo
	// LogWarn logs warnings and errors.
	LogWarn
	// LogError logs errors only.
	LogError
)

// Logger is a leveled printf style logger.
type Logger interface {
	Errorf(f string, v ...any)
	Warningf(f string, v ...any)
	Infof(f string, v ...any)
	Debugf(f string, v ...any)
}

type simpleLogger struct {
	Logger   *log.Logger
	LogLevel LogLevel

	errorPrefix string
	warnPrefix  string
	infoPrefix  string
	debugPrefix string
}

// New creates a logger with the level taken from the LOG_LEVEL environment variable.
// Colors are used when out is a terminal.
func New(name string, out io.Writer) Logger {
	return NewWithLevel(name, out, LogLevelFromEnvironment(), !color.NoColor && out == os.Stderr)
}

// NewWithLevel creates a logger with an explicit level and color setting.
func NewWithLevel(name string, out io.Writer, level LogLevel, colored bool) Logger {
	prefix := func(label string, attr color.Attribute) string {
		c := color.New(attr)
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.Sprint(label) + " "
	}

	flags := log.LstdFlags
	if name == "" {
		flags = 0
	} else {
		name += " "
	}

	return &simpleLogger{
		Logger:      log.New(out, name, flags),
		LogLevel:    level,
		errorPrefix: prefix("ERROR:", color.FgRed),
		warnPrefix:  prefix("WARNING:", color.FgYellow),
		infoPrefix:  prefix("INFO:", color.FgGreen),
		debugPrefix: prefix("DEBUG:", color.FgCyan),
	}
}

func (l *simpleLogger) Errorf(f string, v ...any) {
	if l.LogLevel <= LogError {
		l.Logger.Printf(l.errorPrefix+f, v...)
	}
}

func (l *simpleLogger) Warningf(f string, v ...any) {
	if l.LogLevel <= LogWarn {
		l.Logger.Printf(l.warnPrefix+f, v...)
	}
}

func (l *simpleLogger) Infof(f string, v ...any) {
	if l.LogLevel <= LogInfo {
		l.Logger.Printf(l.infoPrefix+f, v...)
	}
}

func (l *simpleLogger) Debugf(f string, v ...any) {
	if l.LogLevel <= LogDebug {
		l.Logger.Printf(l.debugPrefix+f, v...)
	}
}

// ParseLevel parses a level name: debug, info, warn or error.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(s) {
	case "error":
		return LogError, nil
	case "warn", "warning":
		return LogWarn, nil
	case "info":
		return LogInfo, nil
	case "debug":
		return LogDebug, nil
	}
	return LogInfo, fmt.Errorf("invalid log level %q", s)
}

// LogLevelFromEnvironment reads LOG_LEVEL, defaulting to LogInfo.
func LogLevelFromEnvironment() LogLevel {
	level, _ := ParseLevel(os.Getenv("LOG_LEVEL"))
	return level
}
