// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging holds the package-level logger shared by Examlist packages.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below rather than reaching for L directly.
var L = clog.New(os.Stderr)

// SetLevel sets the minimum level from a config string such as "debug" or
// "warn". Unknown names fall back to info and are reported.
func SetLevel(name string) {
	if strings.TrimSpace(name) == "" {
		L.SetLevel(clog.InfoLevel)
		return
	}
	lvl, err := clog.ParseLevel(strings.ToLower(name))
	if err != nil {
		L.SetLevel(clog.InfoLevel)
		L.Warn(fmt.Sprintf("unknown log level %q, using info", name))
		return
	}
	L.SetLevel(lvl)
}

// SetOutput redirects the package-level logger.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// DebugEnabled reports whether debug messages are currently emitted.
func DebugEnabled() bool {
	return L.GetLevel() <= clog.DebugLevel
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
