// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
)

// FormatWithContextTags formats the string and prepends the context
// tags.
//
// Redaction markers are *not* inserted. The resulting
// string is generally unsafe for reporting.
func FormatWithContextTags(ctx context.Context, format string, args ...interface{}) string {
	var buf strings.Builder
	formatTags(ctx, true /* brackets */, &buf)
	renderArgs(false /* redactable */, &buf, format, args...)
	return buf.String()
}

// formatTags appends the context tags to buf, in the form
// "[k1=v1,k2] ". Nothing is written when ctx carries no tags.
func formatTags(ctx context.Context, brackets bool, buf *strings.Builder) bool {
	tags := logtags.FromContext(ctx)
	if tags == nil {
		return false
	}
	tagList := tags.Get()
	if len(tagList) == 0 {
		return false
	}
	if brackets {
		buf.WriteByte('[')
	}
	for i, t := range tagList {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(t.Key())
		if v := t.Value(); v != nil {
			if len(t.Key()) > 1 {
				buf.WriteByte('=')
			}
			fmt.Fprint(buf, v)
		}
	}
	if brackets {
		buf.WriteString("] ")
	}
	return true
}

// renderArgs formats the log message. When redactable is set, unsafe
// arguments are enclosed in redaction markers.
func renderArgs(redactable bool, buf *strings.Builder, format string, args ...interface{}) {
	if len(args) == 0 {
		buf.WriteString(format)
		return
	}
	if redactable {
		buf.WriteString(string(redact.Sprintf(format, args...)))
		return
	}
	if format == "" {
		fmt.Fprint(buf, args...)
		return
	}
	fmt.Fprintf(buf, format, args...)
}
