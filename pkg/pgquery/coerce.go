// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package pgquery

import (
	"github.com/cockroachdb/errors"
	"github.com/lib/pq/oid"
)

// CoerceToCommonType converts e to targetType. context names the construct
// requiring the conversion, e.g. "UNION/INTERSECT/EXCEPT", and is used in
// error messages.
//
// Untyped literals are retyped in place of a cast. Other expressions are
// wrapped in a RelabelType.
func CoerceToCommonType(e Expr, targetType oid.Oid, context string) (Expr, error) {
	if targetType == InvalidOid {
		return nil, errors.Newf("%s could not convert type %d to an invalid type", errors.Safe(context), ExprType(e))
	}
	inputType := ExprType(e)
	if inputType == targetType {
		return e, nil
	}
	if c, ok := e.(*Const); ok && inputType == oid.T_unknown {
		res := *c
		res.ConstType = targetType
		res.ConstTypMod = -1
		return &res, nil
	}
	if inputType == InvalidOid {
		return nil, errors.Newf("%s could not convert an untyped expression to type %d", errors.Safe(context), targetType)
	}
	return &RelabelType{Arg: e, ResultType: targetType, ResultTypMod: -1}, nil
}
