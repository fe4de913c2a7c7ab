// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dxl

import "github.com/cockroachdb/errors"

// ColumnID uniquely identifies a column within one translation unit.
// Zero is never handed out.
type ColumnID uint32

// SafeValue implements redact.SafeValue.
func (ColumnID) SafeValue() {}

// IDGenerator hands out column ids. All descriptors produced while
// translating one query must share one generator so that ids are unique.
// An IDGenerator is not safe for concurrent use.
type IDGenerator struct {
	next ColumnID
}

// NewIDGenerator returns a generator whose first id is first.
func NewIDGenerator(first ColumnID) *IDGenerator {
	if first == 0 {
		panic(errors.AssertionFailedf("column id 0 is reserved"))
	}
	return &IDGenerator{next: first}
}

// Next returns a fresh id, strictly greater than every id returned before.
func (g *IDGenerator) Next() ColumnID {
	id := g.next
	g.next++
	return id
}

// Current returns the id that the next call to Next will return.
func (g *IDGenerator) Current() ColumnID {
	return g.next
}
