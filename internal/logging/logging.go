// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogFormat is the output format of log lines.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"

	// Log option keys.
	LevelOpt  = "level"
	FormatOpt = "format"

	DefaultLogFormat = LogFormatText
	DefaultLogLevel  = logrus.InfoLevel
)

// DefaultLogger is the base logger every package derives its scoped logger
// from. It writes to stderr so that generated output on stdout stays clean.
var DefaultLogger = initializeDefaultLogger()

func initializeDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(newFormatter(DefaultLogFormat))
	l.SetLevel(DefaultLogLevel)
	return l
}

// LogOptions maps option keys to values. Keys and values are matched
// case-insensitively.
type LogOptions map[string]string

// GetLogLevel returns the configured level, or DefaultLogLevel when unset
// or invalid.
func (o LogOptions) GetLogLevel() logrus.Level {
	if level, err := logrus.ParseLevel(o[LevelOpt]); err == nil {
		return level
	}
	return DefaultLogLevel
}

// GetLogFormat returns the configured format, or DefaultLogFormat when
// unset or invalid.
func (o LogOptions) GetLogFormat() LogFormat {
	switch f := LogFormat(strings.ToLower(o[FormatOpt])); f {
	case LogFormatText, LogFormatJSON:
		return f
	}
	return DefaultLogFormat
}

// SetLogLevel sets the level of DefaultLogger.
func SetLogLevel(level logrus.Level) {
	DefaultLogger.SetLevel(level)
}

// SetDefaultLogLevel resets DefaultLogger to DefaultLogLevel.
func SetDefaultLogLevel() {
	SetLogLevel(DefaultLogLevel)
}

// SetLogFormat sets the formatter of DefaultLogger.
func SetLogFormat(format LogFormat) {
	DefaultLogger.SetFormatter(newFormatter(format))
}

// SetDefaultLogFormat resets DefaultLogger to DefaultLogFormat.
func SetDefaultLogFormat() {
	SetLogFormat(DefaultLogFormat)
}

// SetOutput redirects DefaultLogger.
func SetOutput(w io.Writer) {
	DefaultLogger.SetOutput(w)
}

// SetupLogging applies opts to DefaultLogger. debug forces the debug level
// regardless of opts.
func SetupLogging(opts LogOptions, debug bool) {
	SetLogFormat(opts.GetLogFormat())
	if debug {
		SetLogLevel(logrus.DebugLevel)
		return
	}
	SetLogLevel(opts.GetLogLevel())
}

func newFormatter(format LogFormat) logrus.Formatter {
	if format == LogFormatJSON {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{DisableTimestamp: true}
}
