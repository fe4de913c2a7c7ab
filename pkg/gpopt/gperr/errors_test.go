// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package gperr_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gpdb/gpopt/pkg/gpopt/gperr"
	"github.com/stretchr/testify/require"
)

func TestUnsupportedFeature(t *testing.T) {
	err := gperr.NewUnsupportedFeature("SIRV functions")
	require.True(t, gperr.IsUnsupportedFeature(err))
	require.False(t, gperr.IsInconsistentState(err))
	require.True(t, errors.HasUnimplementedError(err))
	require.Equal(t, "SIRV functions", gperr.UnsupportedFeatureName(err))
	require.Contains(t, err.Error(), "SIRV functions")

	wrapped := errors.Wrap(err, "translating range table")
	require.True(t, gperr.IsUnsupportedFeature(wrapped))
	require.Equal(t, "SIRV functions", gperr.UnsupportedFeatureName(wrapped))

	require.Equal(t, "", gperr.UnsupportedFeatureName(errors.New("other")))
}

func TestInconsistentState(t *testing.T) {
	err := gperr.AttributeNotFound(42)
	require.True(t, gperr.IsInconsistentState(err))
	require.True(t, errors.Is(err, gperr.ErrAttributeNotFound))
	require.False(t, errors.Is(err, gperr.ErrUnrecognizedType))
	require.False(t, gperr.IsUnsupportedFeature(err))
	require.Equal(t, "attribute 42 not found", err.Error())

	err = gperr.UnrecognizedValue("join type", 9)
	require.True(t, errors.Is(err, gperr.ErrUnrecognizedValue))
	require.Equal(t, "unrecognized join type: 9", err.Error())

	err = gperr.UnrecognizedType("could not determine actual type of %s", "f")
	require.True(t, errors.Is(err, gperr.ErrUnrecognizedType))
	require.True(t, gperr.IsInconsistentState(err))

	err = gperr.ObjectNotFound("relation", 16384)
	require.True(t, errors.Is(err, gperr.ErrObjectNotFound))
	require.Equal(t, "relation 16384 not found in metadata catalog", err.Error())
}
