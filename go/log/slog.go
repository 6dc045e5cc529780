/*
Copyright 2024 The Uniconv Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/spf13/pflag"
)

var (
	// logFormat and logLevel back the --log-fmt and --log-level flags
	// registered by RegisterFlags.
	logFormat string
	logLevel  string

	// structured flips once Init installs a slog handler. Until then the
	// structured helpers degrade to glog.
	structured atomic.Bool
)

// Init switches the structured helpers over to a slog handler built from the
// log flags. The switch happens only when --log-fmt was given explicitly on
// the command line, so plain invocations keep the classic glog output.
func Init(fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	format := fs.Lookup("log-fmt")
	if format == nil || !format.Changed {
		return nil
	}

	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}
	handler, err := newHandler(logFormat, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))
	structured.Store(true)
	return nil
}

// parseLevel maps a --log-level value to its slog.Level.
func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log-level %q: expected debug, info, warn, or error", level)
}

// newHandler builds the stderr handler for a --log-fmt value.
func newHandler(format string, opts *slog.HandlerOptions) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return slog.NewJSONHandler(os.Stderr, opts), nil
	case "logfmt":
		return slog.NewTextHandler(os.Stderr, opts), nil
	}
	return nil, fmt.Errorf("invalid log-fmt %q: expected json or logfmt", format)
}

// Enabled reports whether a record at level would be emitted. Before Init has
// switched to structured output, info and above always pass through to glog
// and debug is gated on glog verbosity 1.
func Enabled(level slog.Level) bool {
	if structured.Load() {
		return slog.Default().Enabled(context.Background(), level)
	}
	if level < slog.LevelInfo {
		return bool(V(1))
	}
	return true
}

// logS emits one record through the default slog handler, or through glog at
// the matching severity while structured output is off. The source location
// attributed to the record is the caller of the exported helper.
func logS(level slog.Level, msg string, args ...any) {
	if !structured.Load() {
		// glog has three severities; debug degrades to info.
		all := append([]any{msg}, args...)
		switch level {
		case slog.LevelWarn:
			WarningDepth(2, all...)
		case slog.LevelError:
			ErrorDepth(2, all...)
		default:
			InfoDepth(2, all...)
		}
		return
	}

	ctx := context.Background()
	logger := slog.Default()
	if !logger.Enabled(ctx, level) {
		return
	}

	// Skip runtime.Callers, logS, and the helper itself.
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	record := slog.NewRecord(time.Now(), level, msg, pcs[0])
	record.Add(args...)
	_ = logger.Handler().Handle(ctx, record)
}

// InfoS logs msg and alternating key-value pairs at the info level.
func InfoS(msg string, args ...any) {
	logS(slog.LevelInfo, msg, args...)
}

// WarnS logs msg and alternating key-value pairs at the warn level.
func WarnS(msg string, args ...any) {
	logS(slog.LevelWarn, msg, args...)
}

// DebugS logs msg and alternating key-value pairs at the debug level. With
// structured output off, the record lands in the glog info stream.
func DebugS(msg string, args ...any) {
	logS(slog.LevelDebug, msg, args...)
}

// ErrorS logs msg and alternating key-value pairs at the error level.
func ErrorS(msg string, args ...any) {
	logS(slog.LevelError, msg, args...)
}

// SetLogger installs logger as the structured default and returns a func
// that restores the previous state. Tests use it to capture records.
func SetLogger(logger *slog.Logger) func() {
	if logger == nil {
		return func() {}
	}

	previousDefault := slog.Default()
	previousEnabled := structured.Load()

	slog.SetDefault(logger)
	structured.Store(true)

	return func() {
		slog.SetDefault(previousDefault)
		structured.Store(previousEnabled)
	}
}
