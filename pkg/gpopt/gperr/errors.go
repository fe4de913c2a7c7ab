// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package gperr defines the two classes of errors raised while translating
// a host query into DXL.
//
// Unsupported-feature errors report query shapes the optimizer cannot
// handle. They are expected and tell the caller to fall back to the host
// planner. Inconsistent-state errors report a broken translation invariant
// (a missing attribute mapping, an unresolvable type, an enum value outside
// its range) and abort the current optimization attempt.
//
// Assertion failures (errors.AssertionFailedf) are a third, distinct class
// reserved for conditions that hold by construction.
package gperr

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

var (
	// ErrUnsupportedFeature marks every unsupported-feature error.
	ErrUnsupportedFeature = errors.New("unsupported feature")

	// ErrInconsistentState marks every inconsistent-state error.
	ErrInconsistentState = errors.New("inconsistent translation state")

	// ErrAttributeNotFound marks lookups of attribute numbers or column ids
	// that are absent from the translation context.
	ErrAttributeNotFound = errors.New("attribute not found")

	// ErrUnrecognizedType marks types that cannot be resolved to a concrete
	// type.
	ErrUnrecognizedType = errors.New("unrecognized type")

	// ErrUnrecognizedValue marks enum values with no DXL counterpart.
	ErrUnrecognizedValue = errors.New("unrecognized value")

	// ErrObjectNotFound marks metadata lookups that miss the catalog.
	ErrObjectNotFound = errors.New("metadata object not found")
)

// NewUnsupportedFeature returns an error reporting that the named feature
// is not supported by the optimizer. The feature name is considered safe
// for reporting.
func NewUnsupportedFeature(feature string) error {
	err := errors.UnimplementedError(errors.IssueLink{Detail: feature}, feature)
	err = errors.Wrap(err, "DXL translation")
	return errors.Mark(err, ErrUnsupportedFeature)
}

// IsUnsupportedFeature returns true if err (or any error it wraps) reports an
// unsupported feature, signaling that the caller should fall back to the
// host planner.
func IsUnsupportedFeature(err error) bool {
	return errors.Is(err, ErrUnsupportedFeature)
}

// UnsupportedFeatureName returns the feature name recorded by
// NewUnsupportedFeature, or "" if err is not an unsupported-feature error.
func UnsupportedFeatureName(err error) string {
	if !IsUnsupportedFeature(err) {
		return ""
	}
	for _, l := range errors.GetAllIssueLinks(err) {
		if l.Detail != "" {
			return l.Detail
		}
	}
	return ""
}

// IsInconsistentState returns true if err reports a broken translation
// invariant.
func IsInconsistentState(err error) bool {
	return errors.Is(err, ErrInconsistentState)
}

// newInconsistent builds an inconsistent-state error marked with both the
// class sentinel and the specific sentinel.
func newInconsistent(depth int, specific error, format string, args ...interface{}) error {
	err := errors.NewWithDepthf(depth+1, format, args...)
	err = errors.Mark(err, specific)
	return errors.Mark(err, ErrInconsistentState)
}

// AttributeNotFound returns an inconsistent-state error reporting that key
// has no entry in the mapping being consulted.
func AttributeNotFound(key interface{}) error {
	return newInconsistent(1, ErrAttributeNotFound, "attribute %v not found", redact.Safe(key))
}

// UnrecognizedType returns an inconsistent-state error for a type that
// could not be resolved.
func UnrecognizedType(format string, args ...interface{}) error {
	return newInconsistent(1, ErrUnrecognizedType, format, args...)
}

// UnrecognizedValue returns an inconsistent-state error for an enum value
// of the named kind with no DXL counterpart.
func UnrecognizedValue(kind redact.SafeString, value interface{}) error {
	return newInconsistent(1, ErrUnrecognizedValue, "unrecognized %s: %v", kind, redact.Safe(value))
}

// ObjectNotFound returns an inconsistent-state error for a metadata
// object missing from the catalog.
func ObjectNotFound(kind redact.SafeString, id interface{}) error {
	return newInconsistent(1, ErrObjectNotFound, "%s %v not found in metadata catalog", kind, redact.Safe(id))
}
