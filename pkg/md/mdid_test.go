// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package md_test

import (
	"testing"

	"github.com/cockroachdb/redact"
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/lib/pq/oid"
	"github.com/stretchr/testify/require"
)

func TestMDId(t *testing.T) {
	require.False(t, md.InvalidMDId.IsValid())
	require.True(t, md.GeneralID(oid.T_int4).IsValid())

	a := md.GeneralID(oid.T_int4)
	b := md.GeneralID(oid.T_int4)
	require.Equal(t, a, b)
	require.Equal(t, a.Hash(), b.Hash())

	// The same object id in different namespaces is a different object.
	require.NotEqual(t, md.GeneralID(16384), md.RelID(16384))
	require.NotEqual(t, md.GeneralID(16384).Hash(), md.RelID(16384).Hash())

	require.Equal(t, "0.23.1.0", a.String())
	require.Equal(t, "1.16384.1.0", md.RelID(16384).String())
	require.Equal(t, redact.RedactableString("1.16384.1.0"), redact.Sprint(md.RelID(16384)))
}

func TestCombineHashes(t *testing.T) {
	h1 := md.GeneralID(oid.T_int4).Hash()
	h2 := md.GeneralID(oid.T_int8).Hash()
	require.Equal(t, md.CombineHashes(h1, h2), md.CombineHashes(h1, h2))
	require.NotEqual(t, md.CombineHashes(h1, h2), md.CombineHashes(h2, h1))
}

func TestIsPolymorphicType(t *testing.T) {
	for _, o := range []oid.Oid{oid.T_anyelement, oid.T_anyarray, oid.T_anynonarray, oid.T_anyenum, oid.T_anyrange} {
		require.True(t, md.IsPolymorphicType(o), "%d", o)
	}
	for _, o := range []oid.Oid{oid.T_int4, oid.T_text, oid.T_record, oid.T_unknown} {
		require.False(t, md.IsPolymorphicType(o), "%d", o)
	}
}

func TestDistributionPolicy(t *testing.T) {
	require.True(t, md.DistributionHash.IsDistributed())
	require.True(t, md.DistributionRandom.IsDistributed())
	require.True(t, md.DistributionReplicated.IsDistributed())
	require.False(t, md.DistributionMasterOnly.IsDistributed())
	require.False(t, md.DistributionUniversal.IsDistributed())
	require.Equal(t, "master-only", md.DistributionMasterOnly.String())
}
