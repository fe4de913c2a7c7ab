// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package operators

import (
	"github.com/cockroachdb/errors"
	"github.com/gpdb/gpopt/pkg/dxl"
	"github.com/gpdb/gpopt/pkg/gpopt/gperr"
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/gpdb/gpopt/pkg/pgquery"
)

// Expr is an operator applied to child expressions.
type Expr struct {
	Op       Operator
	Children []*Expr
}

// NewExpr returns op applied to children.
func NewExpr(op Operator, children ...*Expr) *Expr {
	return &Expr{Op: op, Children: children}
}

// HasNonScalarFunction returns true if the expression can return more
// than one row per input row.
func (e *Expr) HasNonScalarFunction() bool {
	return e.Op.HasNonScalarFunction(e.Children)
}

// EvalBool returns what is statically known about the expression's
// boolean value.
func (e *Expr) EvalBool() BoolEvalResult {
	children := make([]BoolEvalResult, len(e.Children))
	for i, c := range e.Children {
		children[i] = c.EvalBool()
	}
	return e.Op.EvalBool(children)
}

// HashValue hashes the expression tree.
func (e *Expr) HashValue() uint64 {
	h := e.Op.HashValue()
	for _, c := range e.Children {
		h = md.CombineHashes(h, c.HashValue())
	}
	return h
}

// Matches returns true if both trees apply matching operators to matching
// children.
func (e *Expr) Matches(other *Expr) bool {
	if !e.Op.Matches(other.Op) || len(e.Children) != len(other.Children) {
		return false
	}
	for i := range e.Children {
		if !e.Children[i].Matches(other.Children[i]) {
			return false
		}
	}
	return true
}

// ColumnResolver returns the column id referenced by a Var.
type ColumnResolver func(v *pgquery.Var) (dxl.ColumnID, error)

// Build converts a host scalar expression into an expression of the
// algebra. Function names are taken from the catalog.
func Build(acc md.Accessor, e pgquery.Expr, cols ColumnResolver) (*Expr, error) {
	switch t := e.(type) {
	case *pgquery.Var:
		id, err := cols(t)
		if err != nil {
			return nil, err
		}
		return NewExpr(&ScalarIdent{ColID: id, Type: md.GeneralID(t.VarType)}), nil

	case *pgquery.Const:
		return NewExpr(&ScalarConst{Type: md.GeneralID(t.ConstType), IsNull: t.ConstIsNull, Value: t.Value}), nil

	case *pgquery.RelabelType:
		// Binary-compatible casts do not change the value.
		return Build(acc, t.Arg, cols)

	case *pgquery.FuncExpr:
		fn, err := acc.RetrieveFunc(md.GeneralID(t.FuncID))
		if err != nil {
			return nil, err
		}
		op, err := NewScalarFunc(acc, fn.ID, md.GeneralID(t.FuncResultType),
			md.DefaultTypeModifier, fn.Name, t.FuncFormat, t.FuncVariadic)
		if err != nil {
			return nil, err
		}
		res := NewExpr(op)
		for _, arg := range t.Args {
			child, err := Build(acc, arg, cols)
			if err != nil {
				return nil, err
			}
			res.Children = append(res.Children, child)
		}
		return res, nil

	case *pgquery.OpExpr:
		return nil, gperr.NewUnsupportedFeature("operator expressions")

	case *pgquery.SubLink:
		return nil, gperr.NewUnsupportedFeature("sub-selects in scalar expressions")
	}
	panic(errors.AssertionFailedf("unexpected expression %T", e))
}
