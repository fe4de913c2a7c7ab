// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package operators

import (
	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/redact"
	"github.com/gpdb/gpopt/pkg/dxl"
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/lib/pq/oid"
)

// ScalarIdent references the column with the given id.
type ScalarIdent struct {
	ColID dxl.ColumnID
	Type  md.MDId
}

var _ Operator = (*ScalarIdent)(nil)

// ID is part of the Operator interface.
func (*ScalarIdent) ID() OperatorID { return ScalarIdentOp }

// TypeID is part of the Operator interface.
func (s *ScalarIdent) TypeID() md.MDId { return s.Type }

// HashValue is part of the Operator interface.
func (s *ScalarIdent) HashValue() uint64 {
	return md.CombineHashes(ScalarIdentOp.Hash(), uint64(s.ColID))
}

// Matches is part of the Operator interface.
func (s *ScalarIdent) Matches(other Operator) bool {
	o, ok := other.(*ScalarIdent)
	return ok && o.ColID == s.ColID
}

// HasNonScalarFunction is part of the Operator interface.
func (*ScalarIdent) HasNonScalarFunction([]*Expr) bool { return false }

// EvalBool is part of the Operator interface.
func (*ScalarIdent) EvalBool([]BoolEvalResult) BoolEvalResult { return EberAny }

// SafeFormat implements redact.SafeFormatter.
func (s *ScalarIdent) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%s (%d)", ScalarIdentOp, s.ColID)
}

func (s *ScalarIdent) String() string { return redact.StringWithoutMarkers(s) }

// ScalarConst is a constant in its text form.
type ScalarConst struct {
	Type   md.MDId
	IsNull bool
	Value  string
}

var _ Operator = (*ScalarConst)(nil)

// ID is part of the Operator interface.
func (*ScalarConst) ID() OperatorID { return ScalarConstOp }

// TypeID is part of the Operator interface.
func (c *ScalarConst) TypeID() md.MDId { return c.Type }

// HashValue is part of the Operator interface.
func (c *ScalarConst) HashValue() uint64 {
	h := md.CombineHashes(ScalarConstOp.Hash(), c.Type.Hash())
	if c.IsNull {
		return h
	}
	return md.CombineHashes(h, xxhash.Sum64String(c.Value))
}

// Matches is part of the Operator interface.
func (c *ScalarConst) Matches(other Operator) bool {
	o, ok := other.(*ScalarConst)
	return ok && o.Type == c.Type && o.IsNull == c.IsNull && (c.IsNull || o.Value == c.Value)
}

// HasNonScalarFunction is part of the Operator interface.
func (*ScalarConst) HasNonScalarFunction([]*Expr) bool { return false }

// EvalBool is part of the Operator interface.
func (c *ScalarConst) EvalBool([]BoolEvalResult) BoolEvalResult {
	if c.IsNull {
		return EberNull
	}
	if c.Type != md.GeneralID(oid.T_bool) {
		return EberAny
	}
	switch c.Value {
	case "t", "true":
		return EberTrue
	case "f", "false":
		return EberFalse
	}
	return EberAny
}

// SafeFormat implements redact.SafeFormatter.
func (c *ScalarConst) SafeFormat(w redact.SafePrinter, _ rune) {
	if c.IsNull {
		w.Printf("%s (NULL)", ScalarConstOp)
		return
	}
	w.Printf("%s (%s)", ScalarConstOp, c.Value)
}

func (c *ScalarConst) String() string { return redact.StringWithoutMarkers(c) }
