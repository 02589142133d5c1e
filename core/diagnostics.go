// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// DefaultReportFlags are the message classes registered by default.
const DefaultReportFlags = ReportInformation | ReportWarning | ReportPerformanceWarning | ReportError

// Diagnostics is the installed debug report bridge. Report is nil when
// the debug report extension was not enabled.
type Diagnostics struct {
	Report DebugReport
}

// Installed reports whether a callback is registered.
func (d *Diagnostics) Installed() bool {
	return d != nil && d.Report != nil
}

// Destroy uninstalls the callback, it must run before the instance is destroyed.
func (d *Diagnostics) Destroy() {
	if !d.Installed() {
		return
	}
	d.Report.Destroy()
	d.Report = nil
}

// InstallDiagnostics routes driver messages to logger. It never fails the
// bring-up: without the extension, or when the driver refuses the callback,
// an empty Diagnostics is returned.
func InstallDiagnostics(logger log.FieldLogger, ctx *Context, flags ReportFlags) *Diagnostics {
	if !ctx.HasExtension(DebugReportExtension) {
		logger.Warn("debug report extension not enabled, diagnostics disabled")
		return &Diagnostics{}
	}

	report, err := ctx.Instance.CreateDebugReport(flags, ReportLogger(logger))
	if err != nil {
		logger.Warnf("vk.CreateDebugReportCallback(): %s", err)
		return &Diagnostics{}
	}
	return &Diagnostics{Report: report}
}

// ReportLogger returns the callback logging every message through logger.
// ERROR messages ask the driver to abort the triggering call.
func ReportLogger(logger log.FieldLogger) ReportFunc {
	return func(flags ReportFlags, prefix string, code int32, message string) bool {
		line := FormatReport(prefix, code, message)
		switch {
		case flags&ReportError != 0:
			logger.Error(line)
			return true
		case flags&ReportWarning != 0:
			logger.Warn(line)
		case flags&ReportPerformanceWarning != 0:
			trace(logger, line)
		case flags&ReportInformation != 0:
			logger.Info(line)
		case flags&ReportDebug != 0:
			logger.Debug(line)
		}
		return false
	}
}

// trace logs at trace level when logger supports it, at debug otherwise.
func trace(logger log.FieldLogger, line string) {
	if l, ok := logger.(log.Ext1FieldLogger); ok {
		l.Trace(line)
		return
	}
	logger.Debug(line)
}

// FormatReport renders a driver message as a single line.
func FormatReport(prefix string, code int32, message string) string {
	return fmt.Sprintf("[%s] Code %d : %s", prefix, code, message)
}
