// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dxl

import "fmt"

// JoinType is the kind of a logical join.
type JoinType uint8

const (
	JoinInner JoinType = iota
	JoinLeft
	JoinFull
	JoinRight
	// JoinIn is a semi-join.
	JoinIn
	JoinLeftAntiSemijoin
	// JoinLeftAntiSemijoinNotIn is an anti-join with NOT IN null semantics.
	JoinLeftAntiSemijoinNotIn
	numJoinTypes
)

var joinTypeNames = [numJoinTypes]string{
	JoinInner:                 "Inner",
	JoinLeft:                  "Left",
	JoinFull:                  "Full",
	JoinRight:                 "Right",
	JoinIn:                    "In",
	JoinLeftAntiSemijoin:      "LeftAntiSemiJoin",
	JoinLeftAntiSemijoinNotIn: "LeftAntiSemiJoinNotIn",
}

func (j JoinType) String() string {
	if j >= numJoinTypes {
		return fmt.Sprintf("JoinType(%d)", j)
	}
	return joinTypeNames[j]
}

// SafeValue implements redact.SafeValue.
func (JoinType) SafeValue() {}

// IndexScanDirection is the direction of an index scan.
type IndexScanDirection uint8

const (
	IndexScanBackward IndexScanDirection = iota
	IndexScanForward
	IndexScanNoMovement
	numIndexScanDirections
)

var indexScanDirectionNames = [numIndexScanDirections]string{
	IndexScanBackward:   "Backward",
	IndexScanForward:    "Forward",
	IndexScanNoMovement: "NoMovement",
}

func (d IndexScanDirection) String() string {
	if d >= numIndexScanDirections {
		return fmt.Sprintf("IndexScanDirection(%d)", d)
	}
	return indexScanDirectionNames[d]
}

// SafeValue implements redact.SafeValue.
func (IndexScanDirection) SafeValue() {}

// SetOpType is the kind of a set operation.
type SetOpType uint8

const (
	SetOpUnion SetOpType = iota
	SetOpUnionAll
	SetOpIntersect
	SetOpIntersectAll
	SetOpDifference
	SetOpDifferenceAll
	numSetOpTypes
)

var setOpTypeNames = [numSetOpTypes]string{
	SetOpUnion:         "Union",
	SetOpUnionAll:      "UnionAll",
	SetOpIntersect:     "Intersect",
	SetOpIntersectAll:  "IntersectAll",
	SetOpDifference:    "Difference",
	SetOpDifferenceAll: "DifferenceAll",
}

func (s SetOpType) String() string {
	if s >= numSetOpTypes {
		return fmt.Sprintf("SetOpType(%d)", s)
	}
	return setOpTypeNames[s]
}

// SafeValue implements redact.SafeValue.
func (SetOpType) SafeValue() {}

// SubPlanType is the kind of a correlated subplan.
type SubPlanType uint8

const (
	SubPlanScalar SubPlanType = iota
	SubPlanExists
	SubPlanNotExists
	SubPlanAny
	SubPlanAll
	numSubPlanTypes
)

var subPlanTypeNames = [numSubPlanTypes]string{
	SubPlanScalar:    "Scalar",
	SubPlanExists:    "Exists",
	SubPlanNotExists: "NotExists",
	SubPlanAny:       "Any",
	SubPlanAll:       "All",
}

func (s SubPlanType) String() string {
	if s >= numSubPlanTypes {
		return fmt.Sprintf("SubPlanType(%d)", s)
	}
	return subPlanTypeNames[s]
}

// SafeValue implements redact.SafeValue.
func (SubPlanType) SafeValue() {}

// AggrefKind is the kind of an aggregate call.
type AggrefKind uint8

const (
	AggrefNormal AggrefKind = iota
	AggrefOrderedSet
	AggrefHypothetical
	numAggrefKinds
)

var aggrefKindNames = [numAggrefKinds]string{
	AggrefNormal:       "Normal",
	AggrefOrderedSet:   "OrderedSet",
	AggrefHypothetical: "Hypothetical",
}

func (k AggrefKind) String() string {
	if k >= numAggrefKinds {
		return fmt.Sprintf("AggrefKind(%d)", k)
	}
	return aggrefKindNames[k]
}

// SafeValue implements redact.SafeValue.
func (AggrefKind) SafeValue() {}
