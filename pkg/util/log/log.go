// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log is the logging facade used throughout gpopt. Messages carry
// the logtags attached to the context and are written through glog.
package log

import (
	"context"
	"sync/atomic"

	"github.com/golang/glog"
)

// Level specifies a level of verbosity for V logs.
type Level int32

// Severity identifies the sort of log: info, warning etc.
type Severity int32

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityFatal
)

// verbosity is the threshold applied to VEventf in addition to
// glog's own -v flag. It lets tests raise verbosity without touching the
// process-wide flag set.
var verbosity atomic.Int32

// SetVerbosity sets the verbosity threshold used by V and VEventf and
// returns the previous value.
func SetVerbosity(level Level) Level {
	return Level(verbosity.Swap(int32(level)))
}

// V returns true if the logging verbosity is set to the specified level or
// higher.
func V(level Level) bool {
	return Level(verbosity.Load()) >= level || bool(glog.V(glog.Level(level)))
}

// Infof logs to the INFO log.
func Infof(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, SeverityInfo, format, args...)
}

// Warningf logs to the WARNING and INFO logs.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, SeverityWarning, format, args...)
}

// Errorf logs to the ERROR, WARNING, and INFO logs.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, SeverityError, format, args...)
}

// Fatalf logs to the FATAL, ERROR, WARNING, and INFO logs, then exits the
// process.
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, SeverityFatal, format, args...)
}

// VEventf logs the message to INFO if the verbosity is at least level.
func VEventf(ctx context.Context, level Level, format string, args ...interface{}) {
	if !V(level) {
		return
	}
	logDepth(ctx, 1, SeverityInfo, format, args...)
}

// ExpensiveLogEnabled is used to test whether effort should be used to
// produce log messages such as those derived from formatting large DXL
// trees.
func ExpensiveLogEnabled(ctx context.Context, level Level) bool {
	return V(level)
}

func logDepth(ctx context.Context, depth int, sev Severity, format string, args ...interface{}) {
	msg := FormatWithContextTags(ctx, format, args...)
	depth++
	switch sev {
	case SeverityInfo:
		glog.InfoDepth(depth, msg)
	case SeverityWarning:
		glog.WarningDepth(depth, msg)
	case SeverityError:
		glog.ErrorDepth(depth, msg)
	default:
		glog.FatalDepth(depth, msg)
	}
}
