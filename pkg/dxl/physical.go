// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dxl

import "github.com/cockroachdb/errors"

// Motion moves rows between segments. Its Operator is one of the
// Physical*MotionOp kinds.
type Motion struct {
	Kind Operator
	// DuplicateSensitive is meaningful for redistribute and random motions
	// only. It is set when the motion's input may contain duplicates that
	// must not be broadcast to several segments.
	DuplicateSensitive bool
	OutputColumns      []ColumnID
}

// NewMotion returns a motion of the given kind.
func NewMotion(kind Operator, duplicateSensitive bool, cols ...ColumnID) *Motion {
	switch kind {
	case PhysicalGatherMotionOp, PhysicalBroadcastMotionOp, PhysicalRedistributeMotionOp,
		PhysicalRandomMotionOp, PhysicalRoutedDistributeMotionOp:
	default:
		panic(errors.AssertionFailedf("%s is not a motion", kind))
	}
	return &Motion{Kind: kind, DuplicateSensitive: duplicateSensitive, OutputColumns: cols}
}

// Operator is part of the Op interface.
func (m *Motion) Operator() Operator { return m.Kind }
