// Package log provides the leveled logger shared by the store and the
// benchmark tooling, with colored terminal output and optional rotated
// file output.
package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultTimeFormat = "2006-01-02 15:04:05"

type Logger struct {
	writer io.Writer

	Name  string
	Level LogLevel

	TimeFormat string
	NoColor    bool
}

// Rotation controls the rotated log file written when a file path is
// configured.
type Rotation struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// DefaultRotation keeps up to five 128 MB files for sixteen days.
func DefaultRotation() Rotation {
	return Rotation{
		MaxSize:    128,
		MaxBackups: 5,
		MaxAge:     16,
	}
}

// New creates a logger writing to stdout.
func New(name string, level LogLevel) *Logger {
	return &Logger{
		writer:     os.Stdout,
		Name:       name,
		Level:      level,
		TimeFormat: defaultTimeFormat,
	}
}

// NewWithFile creates a logger writing to stdout and to a rotated file.
// With noTerminal set, only the file receives output.
func NewWithFile(name string, level LogLevel, file string, rotation Rotation, noTerminal bool) *Logger {
	var writers []io.Writer

	if !noTerminal {
		writers = append(writers, os.Stdout)
	}

	if file != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    rotation.MaxSize,
			MaxBackups: rotation.MaxBackups,
			MaxAge:     rotation.MaxAge,
			Compress:   rotation.Compress,
		})
	}

	if len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}

	return &Logger{
		writer:     io.MultiWriter(writers...),
		Name:       name,
		Level:      level,
		TimeFormat: defaultTimeFormat,
		// File output carries no terminal escapes
		NoColor: noTerminal,
	}
}

// Named derives a sub-logger sharing the writer and settings.
func (l *Logger) Named(name string) *Logger {
	sub := *l
	sub.Name = fmt.Sprintf("%s/%s", l.Name, name)

	return &sub
}

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if level < l.Level {
		return
	}

	prefix := fmt.Sprintf("[%s] %-5s", time.Now().Format(l.TimeFormat), level)
	if l.Name != "" {
		prefix = fmt.Sprintf("%s [%s]", prefix, l.Name)
	}

	formatted := fmt.Sprintf(msg, args...)
	if l.NoColor {
		fmt.Fprintf(l.writer, "%s %s\n", prefix, formatted)
	} else {
		fmt.Fprintf(l.writer, "%s%s %s\033[0m\n", Color(level), prefix, formatted)
	}

	if level == Fatal {
		os.Exit(1)
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(Debug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(Info, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(Warn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(Error, msg, args...)
}

func (l *Logger) Fatal(msg string, args ...any) {
	l.log(Fatal, msg, args...)
}
