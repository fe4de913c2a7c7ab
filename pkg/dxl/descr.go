// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dxl

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/gpdb/gpopt/pkg/md"
)

// ColumnDescr describes one output column of a table, table function or
// derived table.
type ColumnDescr struct {
	Name string
	ID   ColumnID
	// AttrNum is the column's position in its source, 1-based. System
	// columns have negative attribute numbers.
	AttrNum      int32
	TypeID       md.MDId
	TypeModifier int32
	Dropped      bool
	// Width is the fixed width of the column type, or 0 if unknown.
	Width uint32
}

// SafeFormat implements redact.SafeFormatter.
func (c *ColumnDescr) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%s:%d(attno=%d type=%s", c.Name, c.ID, c.AttrNum, c.TypeID)
	if c.TypeModifier != md.DefaultTypeModifier {
		w.Printf(" typmod=%d", c.TypeModifier)
	}
	w.SafeString(")")
}

func (c *ColumnDescr) String() string {
	return redact.StringWithoutMarkers(c)
}

// LockMode is the lock strength taken on a relation, as recorded by the
// host parser.
type LockMode int32

// SafeValue implements redact.SafeValue.
func (LockMode) SafeValue() {}

// TableDescr describes a base relation referenced by a query.
type TableDescr struct {
	ID   md.MDId
	Name string
	// CheckAsUser is the user id permissions are checked against, or zero
	// for the current user.
	CheckAsUser   uint32
	LockMode      LockMode
	RequiredPerms uint32
	// AssignedQueryIDForTargetRel is the id of the query that writes the
	// relation, when it is a DML target.
	AssignedQueryIDForTargetRel uint32

	columns []*ColumnDescr
}

// AddColumn appends a column to the descriptor.
func (t *TableDescr) AddColumn(c *ColumnDescr) {
	t.columns = append(t.columns, c)
}

// Arity returns the number of columns.
func (t *TableDescr) Arity() int {
	return len(t.columns)
}

// Columns returns the columns in attribute order. The slice must not be
// modified.
func (t *TableDescr) Columns() []*ColumnDescr {
	return t.columns
}

// ColumnAt returns the column at ordinal pos.
func (t *TableDescr) ColumnAt(pos int) *ColumnDescr {
	if pos < 0 || pos >= len(t.columns) {
		panic(errors.AssertionFailedf("column position %d out of range [0, %d)", pos, len(t.columns)))
	}
	return t.columns[pos]
}

// DefinesColumn is part of the ColumnDefiner interface.
func (t *TableDescr) DefinesColumn(id ColumnID) bool {
	for _, c := range t.columns {
		if c.ID == id {
			return true
		}
	}
	return false
}

// SafeFormat implements redact.SafeFormatter.
func (t *TableDescr) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%s [%s]", t.Name, t.ID)
}

func (t *TableDescr) String() string {
	return redact.StringWithoutMarkers(t)
}

// IndexDescr describes an index.
type IndexDescr struct {
	ID   md.MDId
	Name string
}

// SafeFormat implements redact.SafeFormatter.
func (i *IndexDescr) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%s [%s]", i.Name, i.ID)
}

func (i *IndexDescr) String() string {
	return redact.StringWithoutMarkers(i)
}
