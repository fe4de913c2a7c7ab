// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dxl

import "github.com/gpdb/gpopt/pkg/md"

// LogicalGet scans a base relation.
type LogicalGet struct {
	Table *TableDescr
}

// Operator is part of the Op interface.
func (*LogicalGet) Operator() Operator { return LogicalGetOp }

// DefinesColumn is part of the ColumnDefiner interface.
func (g *LogicalGet) DefinesColumn(id ColumnID) bool {
	return g.Table.DefinesColumn(id)
}

// LogicalTVF is a call to a table-valued function in the FROM clause.
type LogicalTVF struct {
	// FuncID is invalid when the call was folded to a constant.
	FuncID       md.MDId
	ReturnTypeID md.MDId
	Name         string
	Columns      []*ColumnDescr
}

// Operator is part of the Op interface.
func (*LogicalTVF) Operator() Operator { return LogicalTVFOp }

// Arity returns the number of output columns.
func (t *LogicalTVF) Arity() int {
	return len(t.Columns)
}

// DefinesColumn is part of the ColumnDefiner interface.
func (t *LogicalTVF) DefinesColumn(id ColumnID) bool {
	for _, c := range t.Columns {
		if c.ID == id {
			return true
		}
	}
	return false
}
