// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package translate_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gpdb/gpopt/pkg/dxl"
	"github.com/gpdb/gpopt/pkg/gpopt/gperr"
	"github.com/gpdb/gpopt/pkg/pgquery"
	"github.com/gpdb/gpopt/pkg/translate"
	"github.com/stretchr/testify/require"
)

func TestJoinType(t *testing.T) {
	for in, out := range map[pgquery.JoinType]dxl.JoinType{
		pgquery.JoinInner:     dxl.JoinInner,
		pgquery.JoinLeft:      dxl.JoinLeft,
		pgquery.JoinFull:      dxl.JoinFull,
		pgquery.JoinRight:     dxl.JoinRight,
		pgquery.JoinSemi:      dxl.JoinIn,
		pgquery.JoinAnti:      dxl.JoinLeftAntiSemijoin,
		pgquery.JoinLASJNotIn: dxl.JoinLeftAntiSemijoinNotIn,
	} {
		res, err := translate.JoinType(in)
		require.NoError(t, err)
		require.Equal(t, out, res)
	}
	for _, in := range []pgquery.JoinType{pgquery.JoinUniqueOuter, pgquery.JoinUniqueInner, 99} {
		_, err := translate.JoinType(in)
		require.True(t, errors.Is(err, gperr.ErrUnrecognizedValue))
		require.True(t, gperr.IsInconsistentState(err))
	}
}

func TestScanDirection(t *testing.T) {
	for _, sd := range []pgquery.ScanDirection{
		pgquery.BackwardScanDirection, pgquery.NoMovementScanDirection, pgquery.ForwardScanDirection,
	} {
		d, err := translate.IndexScanDirection(sd)
		require.NoError(t, err)
		require.Equal(t, sd, translate.ScanDirection(d))
	}
	_, err := translate.IndexScanDirection(7)
	require.True(t, errors.Is(err, gperr.ErrUnrecognizedValue))
}

func TestSetOpType(t *testing.T) {
	testCases := []struct {
		op       pgquery.SetOperation
		all      bool
		expected dxl.SetOpType
	}{
		{pgquery.SetOpUnion, false, dxl.SetOpUnion},
		{pgquery.SetOpUnion, true, dxl.SetOpUnionAll},
		{pgquery.SetOpIntersect, false, dxl.SetOpIntersect},
		{pgquery.SetOpIntersect, true, dxl.SetOpIntersectAll},
		{pgquery.SetOpExcept, false, dxl.SetOpDifference},
		{pgquery.SetOpExcept, true, dxl.SetOpDifferenceAll},
	}
	for _, tc := range testCases {
		res, err := translate.SetOpType(tc.op, tc.all)
		require.NoError(t, err)
		require.Equal(t, tc.expected, res)
	}
	_, err := translate.SetOpType(pgquery.SetOpNone, false)
	require.True(t, errors.Is(err, gperr.ErrUnrecognizedValue))
}

func TestSubLinkSubPlan(t *testing.T) {
	for _, sl := range []pgquery.SubLinkType{
		pgquery.ExprSubLink, pgquery.ExistsSubLink, pgquery.NotExistsSubLink,
		pgquery.AnySubLink, pgquery.AllSubLink,
	} {
		sp, err := translate.SubLinkToSubPlan(sl)
		require.NoError(t, err)
		back, err := translate.SubPlanToSubLink(sp)
		require.NoError(t, err)
		require.Equal(t, sl, back)
	}
	_, err := translate.SubLinkToSubPlan(pgquery.ArraySubLink)
	require.True(t, errors.Is(err, gperr.ErrUnrecognizedValue))
	_, err = translate.SubPlanToSubLink(dxl.SubPlanType(42))
	require.True(t, errors.Is(err, gperr.ErrUnrecognizedValue))
}

func TestAggKind(t *testing.T) {
	for _, c := range []byte{'n', 'o', 'h'} {
		k, err := translate.AggKindFromChar(c)
		require.NoError(t, err)
		back, err := translate.AggKindToChar(k)
		require.NoError(t, err)
		require.Equal(t, c, back)
	}
	_, err := translate.AggKindFromChar('x')
	require.True(t, errors.Is(err, gperr.ErrUnrecognizedValue))
	_, err = translate.AggKindToChar(dxl.AggrefKind(9))
	require.True(t, errors.Is(err, gperr.ErrUnrecognizedValue))
}
