// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dxl

import (
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/lib/pq/oid"
)

// ColRef is a reference to a column by id, carrying the column's name and
// type for display and type checking.
type ColRef struct {
	Name         string
	ID           ColumnID
	TypeID       md.MDId
	TypeModifier int32
}

// ScalarIdent references a column.
type ScalarIdent struct {
	ColRef ColRef
}

// Operator is part of the Op interface.
func (*ScalarIdent) Operator() Operator { return ScalarIdentOp }

// Datum is a constant value.
type Datum interface {
	// TypeID returns the type of the value.
	TypeID() md.MDId
	// IsNull returns true for the NULL value of the type.
	IsNull() bool
}

// DatumBool is a boolean constant.
type DatumBool struct {
	Type  md.MDId
	Null  bool
	Value bool
}

// DatumInt2 is a smallint constant.
type DatumInt2 struct {
	Type  md.MDId
	Null  bool
	Value int16
}

// DatumInt4 is an integer constant.
type DatumInt4 struct {
	Type  md.MDId
	Null  bool
	Value int32
}

// DatumInt8 is a bigint constant.
type DatumInt8 struct {
	Type  md.MDId
	Null  bool
	Value int64
}

// DatumOid is an object id constant.
type DatumOid struct {
	Type  md.MDId
	Null  bool
	Value oid.Oid
}

// DatumGeneric is a constant of any other type, kept in the host's binary
// representation.
type DatumGeneric struct {
	Type         md.MDId
	TypeModifier int32
	Null         bool
	Value        []byte
}

func (d *DatumBool) TypeID() md.MDId    { return d.Type }
func (d *DatumInt2) TypeID() md.MDId    { return d.Type }
func (d *DatumInt4) TypeID() md.MDId    { return d.Type }
func (d *DatumInt8) TypeID() md.MDId    { return d.Type }
func (d *DatumOid) TypeID() md.MDId     { return d.Type }
func (d *DatumGeneric) TypeID() md.MDId { return d.Type }

func (d *DatumBool) IsNull() bool    { return d.Null }
func (d *DatumInt2) IsNull() bool    { return d.Null }
func (d *DatumInt4) IsNull() bool    { return d.Null }
func (d *DatumInt8) IsNull() bool    { return d.Null }
func (d *DatumOid) IsNull() bool     { return d.Null }
func (d *DatumGeneric) IsNull() bool { return d.Null }

// ScalarConstValue is a constant.
type ScalarConstValue struct {
	Datum Datum
}

// Operator is part of the Op interface.
func (*ScalarConstValue) Operator() Operator { return ScalarConstValueOp }

// ScalarProjElem defines the column ColID as the value of its child.
type ScalarProjElem struct {
	ColID ColumnID
	Alias string
}

// Operator is part of the Op interface.
func (*ScalarProjElem) Operator() Operator { return ScalarProjElemOp }

// DefinesColumn is part of the ColumnDefiner interface.
func (p *ScalarProjElem) DefinesColumn(id ColumnID) bool { return p.ColID == id }

// ScalarProjList groups the ScalarProjElem children of a projection.
type ScalarProjList struct{}

// Operator is part of the Op interface.
func (*ScalarProjList) Operator() Operator { return ScalarProjListOp }

// ScalarValuesList is a list of scalar children.
type ScalarValuesList struct{}

// Operator is part of the Op interface.
func (*ScalarValuesList) Operator() Operator { return ScalarValuesListOp }

// AggrefChild is the position of a fixed child of a ScalarAggref node.
type AggrefChild int

const (
	// AggrefArgs holds the aggregated arguments.
	AggrefArgs AggrefChild = iota
	// AggrefDirectArgs holds the direct arguments of ordered-set aggregates.
	AggrefDirectArgs
	// AggrefOrder holds the ORDER BY expressions inside the call.
	AggrefOrder
	// AggrefDistinct holds the DISTINCT expressions inside the call.
	AggrefDistinct
	numAggrefChildren
)

// ScalarAggref is an aggregate function call.
type ScalarAggref struct {
	FuncID     md.MDId
	ReturnType md.MDId
	Distinct   bool
	Kind       AggrefKind
}

// Operator is part of the Op interface.
func (*ScalarAggref) Operator() Operator { return ScalarAggrefOp }

// NewAggrefNode returns a ScalarAggref node with its fixed children. Each
// of args, directArgs, order and distinct may be empty.
func NewAggrefNode(agg *ScalarAggref, args, directArgs, order, distinct []*Node) *Node {
	children := make([]*Node, numAggrefChildren)
	children[AggrefArgs] = NewNode(&ScalarValuesList{}, args...)
	children[AggrefDirectArgs] = NewNode(&ScalarValuesList{}, directArgs...)
	children[AggrefOrder] = NewNode(&ScalarValuesList{}, order...)
	children[AggrefDistinct] = NewNode(&ScalarValuesList{}, distinct...)
	return NewNode(agg, children...)
}

// ScalarAssertConstraint fails execution with ErrorMsg when its child
// evaluates to false.
type ScalarAssertConstraint struct {
	ErrorMsg string
}

// Operator is part of the Op interface.
func (*ScalarAssertConstraint) Operator() Operator { return ScalarAssertConstraintOp }

// ScalarAssertConstraintList groups ScalarAssertConstraint children.
type ScalarAssertConstraintList struct{}

// Operator is part of the Op interface.
func (*ScalarAssertConstraintList) Operator() Operator { return ScalarAssertConstraintListOp }
