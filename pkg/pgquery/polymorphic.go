// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package pgquery

import (
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/lib/pq/oid"
)

// ArgMode is the mode of a function argument, as stored in the catalog.
type ArgMode byte

const (
	ArgModeIn       ArgMode = 'i'
	ArgModeOut      ArgMode = 'o'
	ArgModeInOut    ArgMode = 'b'
	ArgModeVariadic ArgMode = 'v'
	ArgModeTable    ArgMode = 't'
)

func (m ArgMode) isInput() bool {
	return m == ArgModeIn || m == ArgModeInOut || m == ArgModeVariadic
}

// PolymorphicResolver resolves the polymorphic types of a function
// signature against the actual arguments of a call.
type PolymorphicResolver interface {
	// ResolvePolymorphicArgTypes replaces the polymorphic types of the
	// output arguments in argTypes with concrete types deduced from call.
	// argModes has one entry per argTypes entry. It returns false if a
	// concrete type cannot be determined.
	ResolvePolymorphicArgTypes(argTypes []oid.Oid, argModes []ArgMode, call *FuncExpr) bool
}

// TypeResolver implements PolymorphicResolver with the host's rules:
// every anyelement, anynonarray and anyenum argument stands for the same
// type T, every anyarray argument stands for T[], and every anyrange
// argument stands for the same range type.
type TypeResolver struct {
	acc md.Accessor
}

var _ PolymorphicResolver = (*TypeResolver)(nil)

// NewTypeResolver returns a resolver that looks up array and element types
// in acc.
func NewTypeResolver(acc md.Accessor) *TypeResolver {
	return &TypeResolver{acc: acc}
}

// ResolvePolymorphicArgTypes is part of the PolymorphicResolver interface.
func (r *TypeResolver) ResolvePolymorphicArgTypes(
	argTypes []oid.Oid, argModes []ArgMode, call *FuncExpr,
) bool {
	var elemType, arrayType, rangeType oid.Oid
	var elemResult, arrayResult, rangeResult bool

	// unify records actual as the binding of *bound, failing on conflicts.
	unify := func(bound *oid.Oid, actual oid.Oid) bool {
		if actual == InvalidOid {
			return false
		}
		if *bound != InvalidOid && *bound != actual {
			return false
		}
		*bound = actual
		return true
	}

	inArg := 0
	for i, t := range argTypes {
		mode := argModes[i]
		var actual oid.Oid
		if mode.isInput() {
			if inArg < len(call.Args) {
				actual = ExprType(call.Args[inArg])
			}
			inArg++
		}
		switch t {
		case oid.T_anyelement, oid.T_anynonarray, oid.T_anyenum:
			if mode.isInput() {
				if !unify(&elemType, actual) {
					return false
				}
			} else {
				elemResult = true
			}
		case oid.T_anyarray:
			if mode.isInput() {
				if !unify(&arrayType, actual) {
					return false
				}
			} else {
				arrayResult = true
			}
		case oid.T_anyrange:
			if mode.isInput() {
				if !unify(&rangeType, actual) {
					return false
				}
			} else {
				rangeResult = true
			}
		}
	}

	// Deduce T from T[] or the reverse.
	if arrayType != InvalidOid {
		elem, ok := r.elementType(arrayType)
		if !ok {
			return false
		}
		if elemType != InvalidOid && elemType != elem {
			return false
		}
		elemType = elem
	}
	if elemResult && elemType == InvalidOid {
		return false
	}
	if arrayResult && arrayType == InvalidOid {
		if elemType == InvalidOid {
			return false
		}
		arr, ok := r.arrayType(elemType)
		if !ok {
			return false
		}
		arrayType = arr
	}
	if rangeResult && rangeType == InvalidOid {
		return false
	}

	for i, t := range argTypes {
		if argModes[i] != ArgModeOut && argModes[i] != ArgModeInOut && argModes[i] != ArgModeTable {
			continue
		}
		switch t {
		case oid.T_anyelement, oid.T_anynonarray, oid.T_anyenum:
			argTypes[i] = elemType
		case oid.T_anyarray:
			argTypes[i] = arrayType
		case oid.T_anyrange:
			argTypes[i] = rangeType
		}
	}
	return true
}

func (r *TypeResolver) elementType(arr oid.Oid) (oid.Oid, bool) {
	typ, err := r.acc.RetrieveType(md.GeneralID(arr))
	if err != nil || !typ.ElemTypeID.IsValid() {
		return InvalidOid, false
	}
	return typ.ElemTypeID.OID, true
}

func (r *TypeResolver) arrayType(elem oid.Oid) (oid.Oid, bool) {
	typ, err := r.acc.RetrieveType(md.GeneralID(elem))
	if err != nil || !typ.ArrayTypeID.IsValid() {
		return InvalidOid, false
	}
	return typ.ArrayTypeID.OID, true
}
