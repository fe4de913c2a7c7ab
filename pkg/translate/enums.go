// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package translate

import (
	"github.com/gpdb/gpopt/pkg/dxl"
	"github.com/gpdb/gpopt/pkg/gpopt/gperr"
	"github.com/gpdb/gpopt/pkg/pgquery"
)

// JoinType maps a host join type to its DXL counterpart. Unique-ified
// joins are planner-internal and have none.
func JoinType(jt pgquery.JoinType) (dxl.JoinType, error) {
	switch jt {
	case pgquery.JoinInner:
		return dxl.JoinInner, nil
	case pgquery.JoinLeft:
		return dxl.JoinLeft, nil
	case pgquery.JoinFull:
		return dxl.JoinFull, nil
	case pgquery.JoinRight:
		return dxl.JoinRight, nil
	case pgquery.JoinSemi:
		return dxl.JoinIn, nil
	case pgquery.JoinAnti:
		return dxl.JoinLeftAntiSemijoin, nil
	case pgquery.JoinLASJNotIn:
		return dxl.JoinLeftAntiSemijoinNotIn, nil
	}
	return 0, gperr.UnrecognizedValue("join type", jt)
}

// IndexScanDirection maps a host scan direction to its DXL counterpart.
func IndexScanDirection(sd pgquery.ScanDirection) (dxl.IndexScanDirection, error) {
	switch sd {
	case pgquery.BackwardScanDirection:
		return dxl.IndexScanBackward, nil
	case pgquery.ForwardScanDirection:
		return dxl.IndexScanForward, nil
	case pgquery.NoMovementScanDirection:
		return dxl.IndexScanNoMovement, nil
	}
	return 0, gperr.UnrecognizedValue("scan direction", sd)
}

// ScanDirection is the inverse of IndexScanDirection.
func ScanDirection(d dxl.IndexScanDirection) pgquery.ScanDirection {
	switch d {
	case dxl.IndexScanBackward:
		return pgquery.BackwardScanDirection
	case dxl.IndexScanForward:
		return pgquery.ForwardScanDirection
	}
	return pgquery.NoMovementScanDirection
}

// SetOpType maps a host set operation to its DXL counterpart.
func SetOpType(op pgquery.SetOperation, all bool) (dxl.SetOpType, error) {
	switch op {
	case pgquery.SetOpUnion:
		if all {
			return dxl.SetOpUnionAll, nil
		}
		return dxl.SetOpUnion, nil
	case pgquery.SetOpIntersect:
		if all {
			return dxl.SetOpIntersectAll, nil
		}
		return dxl.SetOpIntersect, nil
	case pgquery.SetOpExcept:
		if all {
			return dxl.SetOpDifferenceAll, nil
		}
		return dxl.SetOpDifference, nil
	}
	return 0, gperr.UnrecognizedValue("set operation", op)
}

// SubLinkToSubPlan maps the kind of a host sub-select to the kind of the
// subplan that evaluates it.
func SubLinkToSubPlan(t pgquery.SubLinkType) (dxl.SubPlanType, error) {
	switch t {
	case pgquery.ExprSubLink:
		return dxl.SubPlanScalar, nil
	case pgquery.ExistsSubLink:
		return dxl.SubPlanExists, nil
	case pgquery.NotExistsSubLink:
		return dxl.SubPlanNotExists, nil
	case pgquery.AnySubLink:
		return dxl.SubPlanAny, nil
	case pgquery.AllSubLink:
		return dxl.SubPlanAll, nil
	}
	return 0, gperr.UnrecognizedValue("sublink type", t)
}

// SubPlanToSubLink is the inverse of SubLinkToSubPlan.
func SubPlanToSubLink(t dxl.SubPlanType) (pgquery.SubLinkType, error) {
	switch t {
	case dxl.SubPlanScalar:
		return pgquery.ExprSubLink, nil
	case dxl.SubPlanExists:
		return pgquery.ExistsSubLink, nil
	case dxl.SubPlanNotExists:
		return pgquery.NotExistsSubLink, nil
	case dxl.SubPlanAny:
		return pgquery.AnySubLink, nil
	case dxl.SubPlanAll:
		return pgquery.AllSubLink, nil
	}
	return 0, gperr.UnrecognizedValue("subplan type", t)
}

// AggKindFromChar maps the catalog code of an aggregate kind to the DXL
// aggregate kind.
func AggKindFromChar(c byte) (dxl.AggrefKind, error) {
	switch c {
	case 'n':
		return dxl.AggrefNormal, nil
	case 'o':
		return dxl.AggrefOrderedSet, nil
	case 'h':
		return dxl.AggrefHypothetical, nil
	}
	return 0, gperr.UnrecognizedValue("aggregate kind", string(c))
}

// AggKindToChar is the inverse of AggKindFromChar.
func AggKindToChar(k dxl.AggrefKind) (byte, error) {
	switch k {
	case dxl.AggrefNormal:
		return 'n', nil
	case dxl.AggrefOrderedSet:
		return 'o', nil
	case dxl.AggrefHypothetical:
		return 'h', nil
	}
	return 0, gperr.UnrecognizedValue("aggregate kind", k)
}
