// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package pgquery

import (
	"github.com/cockroachdb/errors"
	"github.com/lib/pq/oid"
)

// InvalidOid is the object id that refers to nothing.
const InvalidOid oid.Oid = 0

// ExprType returns the result type of an expression.
func ExprType(e Expr) oid.Oid {
	switch t := e.(type) {
	case *Const:
		return t.ConstType
	case *Var:
		return t.VarType
	case *FuncExpr:
		return t.FuncResultType
	case *OpExpr:
		return t.OpResultType
	case *RelabelType:
		return t.ResultType
	case *SubLink:
		switch t.SubLinkType {
		case ExprSubLink, ArraySubLink, CTESubLink, MultiExprSubLink:
			return t.ResultType
		}
		return oid.T_bool
	case nil:
		return InvalidOid
	}
	panic(errors.AssertionFailedf("unrecognized expression %T", e))
}

// ExprTypeMod returns the type modifier of an expression's result, or -1
// if it has none.
func ExprTypeMod(e Expr) int32 {
	switch t := e.(type) {
	case *Const:
		return t.ConstTypMod
	case *Var:
		return t.VarTypMod
	case *RelabelType:
		return t.ResultTypMod
	}
	return -1
}

// WalkExpr calls fn for e and, while fn returns true, for every
// sub-expression of e in depth-first order. Sub-selects of SubLinks are
// not entered.
func WalkExpr(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch t := e.(type) {
	case *FuncExpr:
		for _, a := range t.Args {
			WalkExpr(a, fn)
		}
	case *OpExpr:
		for _, a := range t.Args {
			WalkExpr(a, fn)
		}
	case *RelabelType:
		WalkExpr(t.Arg, fn)
	case *SubLink:
		WalkExpr(t.TestExpr, fn)
	}
}

// ContainsSubLink returns true if e contains a sub-select.
func ContainsSubLink(e Expr) bool {
	found := false
	WalkExpr(e, func(e Expr) bool {
		if _, ok := e.(*SubLink); ok {
			found = true
		}
		return !found
	})
	return found
}

// Equal returns true if the two expressions are structurally identical.
// SubLinks are equal only if they share the same sub-select.
func Equal(a, b Expr) bool {
	switch ta := a.(type) {
	case nil:
		return b == nil
	case *Const:
		tb, ok := b.(*Const)
		return ok && *ta == *tb
	case *Var:
		tb, ok := b.(*Var)
		return ok && *ta == *tb
	case *FuncExpr:
		tb, ok := b.(*FuncExpr)
		return ok && ta.FuncID == tb.FuncID && ta.FuncResultType == tb.FuncResultType &&
			ta.FuncRetSet == tb.FuncRetSet && ta.FuncVariadic == tb.FuncVariadic &&
			ta.FuncFormat == tb.FuncFormat && equalExprs(ta.Args, tb.Args)
	case *OpExpr:
		tb, ok := b.(*OpExpr)
		return ok && ta.OpNo == tb.OpNo && ta.OpResultType == tb.OpResultType &&
			equalExprs(ta.Args, tb.Args)
	case *RelabelType:
		tb, ok := b.(*RelabelType)
		return ok && ta.ResultType == tb.ResultType && ta.ResultTypMod == tb.ResultTypMod &&
			Equal(ta.Arg, tb.Arg)
	case *SubLink:
		tb, ok := b.(*SubLink)
		return ok && ta.SubLinkType == tb.SubLinkType && ta.SubSelect == tb.SubSelect &&
			ta.ResultType == tb.ResultType && Equal(ta.TestExpr, tb.TestExpr)
	}
	panic(errors.AssertionFailedf("unrecognized expression %T", a))
}

func equalExprs(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// FindMatchingMembersInTargetList returns the target entries whose
// expression is equal to e, in target list order.
func FindMatchingMembersInTargetList(e Expr, targetList []*TargetEntry) []*TargetEntry {
	var res []*TargetEntry
	for _, te := range targetList {
		if Equal(e, te.Expr) {
			res = append(res, te)
		}
	}
	return res
}

// CopyExpr returns a deep copy of e. Sub-selects are shared.
func CopyExpr(e Expr) Expr {
	switch t := e.(type) {
	case nil:
		return nil
	case *Const:
		c := *t
		return &c
	case *Var:
		c := *t
		return &c
	case *FuncExpr:
		c := *t
		c.Args = copyExprs(t.Args)
		return &c
	case *OpExpr:
		c := *t
		c.Args = copyExprs(t.Args)
		return &c
	case *RelabelType:
		c := *t
		c.Arg = CopyExpr(t.Arg)
		return &c
	case *SubLink:
		c := *t
		c.TestExpr = CopyExpr(t.TestExpr)
		return &c
	}
	panic(errors.AssertionFailedf("unrecognized expression %T", e))
}

func copyExprs(exprs []Expr) []Expr {
	if exprs == nil {
		return nil
	}
	res := make([]Expr, len(exprs))
	for i, e := range exprs {
		res[i] = CopyExpr(e)
	}
	return res
}

// CopyQuery returns a copy of q whose target list, entries and expressions
// can be modified without affecting q. Range table entries and clauses are
// shared.
func CopyQuery(q *Query) *Query {
	c := *q
	c.TargetList = make([]*TargetEntry, len(q.TargetList))
	for i, te := range q.TargetList {
		teCopy := *te
		teCopy.Expr = CopyExpr(te.Expr)
		c.TargetList[i] = &teCopy
	}
	c.Quals = CopyExpr(q.Quals)
	return &c
}
