// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package logger sets up the logrus logger of the bring-up programs.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

var prefixes = map[log.Level]string{
	log.PanicLevel: "[ERRR] ",
	log.FatalLevel: "[ERRR] ",
	log.ErrorLevel: "[ERRR] ",
	log.WarnLevel:  "[WARN] ",
	log.InfoLevel:  "[INFO] ",
}

// ReportFormatter writes one line per entry: a severity prefix,
// the message and the entry fields as sorted key=value pairs.
// Trace and debug entries carry no prefix.
type ReportFormatter struct{}

// Format implements logrus.Formatter
func (ReportFormatter) Format(entry *log.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(prefixes[entry.Level])
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// New creates a logger writing to out with the ReportFormatter.
func New(out io.Writer, level log.Level) *log.Logger {
	return &log.Logger{
		Out:       out,
		Formatter: ReportFormatter{},
		Hooks:     make(log.LevelHooks),
		Level:     level,
	}
}

var levels = map[string]log.Level{
	"verbose": log.TraceLevel,
	"debug":   log.DebugLevel,
	"info":    log.InfoLevel,
	"warning": log.WarnLevel,
	"error":   log.ErrorLevel,
}

// ParseLevel accepts the names verbose, debug, info, warning and error
// in any case, plus everything logrus.ParseLevel accepts. An empty
// name is the trace level.
func ParseLevel(name string) (log.Level, error) {
	if name == "" {
		return log.TraceLevel, nil
	}
	if level, ok := levels[strings.ToLower(name)]; ok {
		return level, nil
	}
	return log.ParseLevel(name)
}
